package controllers

import (
	"html/template"
	"net/http"
	"strings"

	"qrattendance/dto"
	"qrattendance/errors"
	"qrattendance/response"
	"qrattendance/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	registration *services.RegistrationService
	siteURL      string
}

// NewUserController uses siteURL for QR links when set, otherwise the
// root of the incoming request.
func NewUserController(registration *services.RegistrationService, siteURL string) *UserController {
	return &UserController{registration: registration, siteURL: siteURL}
}

func (uc *UserController) ShowCreateUser(c *gin.Context) {
	response.Page(c, "createnewuser.html", gin.H{"title": "Create New User"})
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	_ = c.ShouldBind(&input)

	result, err := uc.registration.Register(c.Request.Context(), input.Name, uc.siteRoot(c))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil &&
			(appErr.Code == errors.ErrCodeRequiredField || appErr.Code == errors.ErrCodeUserExists) {
			response.Page(c, "createnewuser.html", gin.H{
				"title": "Create New User",
				"error": appErr.Message,
				"name":  input.Name,
			})
			return
		}
		_ = c.Error(err)
		return
	}

	response.Page(c, "success.html", gin.H{
		"title":  "User Created",
		"name":   result.Name,
		"logURL": result.LogURL,
		// data URIs are dropped by html/template unless marked safe
		"qrCode": template.URL(result.QRCode),
	})
}

func (uc *UserController) siteRoot(c *gin.Context) string {
	if uc.siteURL != "" {
		return uc.siteURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + c.Request.Host + "/"
}

func (uc *UserController) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/createnewuser")
}
