package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"qrattendance/constants"
	"qrattendance/dto"
	"qrattendance/response"
	"qrattendance/services"
	"qrattendance/services/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth   *services.AdminAuthenticator
	logger logger.Logger
}

func NewAuthController(auth *services.AdminAuthenticator, log logger.Logger) *AuthController {
	return &AuthController{auth: auth, logger: log}
}

func loginPage(c *gin.Context, next, errMsg string) {
	action := "/login"
	if next != "" {
		action += "?next=" + url.QueryEscape(next)
	}
	response.Page(c, "login.html", gin.H{
		"title":  "Login",
		"action": action,
		"error":  errMsg,
	})
}

// safeNext keeps only local absolute paths so login cannot redirect off-site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	var query dto.LoginQuery
	_ = c.ShouldBindQuery(&query)
	loginPage(c, safeNext(query.Next), "")
}

func (ac *AuthController) Login(c *gin.Context) {
	var query dto.LoginQuery
	_ = c.ShouldBindQuery(&query)
	next := safeNext(query.Next)

	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		loginPage(c, next, "Incorrect Username or Password")
		return
	}

	if err := ac.auth.Authenticate(input.Username, input.Password); err != nil {
		ac.logger.Info("failed login for %q from %s", input.Username, c.ClientIP())
		loginPage(c, next, "Incorrect Username or Password")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyLoggedIn, true)
	session.Set(constants.SessionKeyUsername, input.Username)
	if err := session.Save(); err != nil {
		_ = c.Error(err)
		return
	}
	ac.logger.Info("admin %q logged in", input.Username)

	if next == "" {
		response.Message(c, "Logged-in", "Logged in successfully", constants.CategorySuccess,
			gin.H{"loggedIn": true})
		return
	}
	c.Redirect(http.StatusFound, next)
}

func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
