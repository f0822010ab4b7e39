package response

import (
	"net/http"
	"net/url"

	"qrattendance/constants"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Page renders an HTML template with status 200. The layout needs to know
// whether the visitor is logged in, so that flag is always added.
func Page(c *gin.Context, name string, data gin.H) {
	render(c, http.StatusOK, name, data)
}

// Message renders the shared result page used by login and attendance logging.
func Message(c *gin.Context, title, message, category string, extra gin.H) {
	data := gin.H{
		"title":    title,
		"message":  message,
		"category": category,
	}
	for k, v := range extra {
		data[k] = v
	}
	render(c, http.StatusOK, "log.html", data)
}

// ServerError renders the error page with status 500.
func ServerError(c *gin.Context, message string) {
	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"title":     "Error",
		"message":   message,
		"requestId": c.GetString(constants.ContextKeyRequestID),
	})
}

// RedirectToLogin sends the visitor to /login, remembering where they were going.
func RedirectToLogin(c *gin.Context, next string) {
	target := "/login"
	if next != "" {
		target += "?next=" + url.QueryEscape(next)
	}
	c.Redirect(http.StatusFound, target)
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["loggedIn"]; !ok {
		data["loggedIn"] = isLoggedIn(c)
	}
	c.HTML(status, name, data)
}

func isLoggedIn(c *gin.Context) bool {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return false
	}
	loggedIn, _ := sessions.Default(c).Get(constants.SessionKeyLoggedIn).(bool)
	return loggedIn
}
