package middleware

import (
	"strings"

	"qrattendance/constants"
	"qrattendance/errors"
	"qrattendance/response"
	"qrattendance/services/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// publicPaths are reachable without a session.
var publicPaths = map[string]bool{
	"/login": true,
	"/ping":  true,
}

// RequireLogin redirects anonymous visitors to /login?next=<path>, except
// for the login page itself and static assets.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if publicPaths[path] || strings.HasPrefix(path, "/static/") {
			c.Next()
			return
		}

		if loggedIn, _ := sessions.Default(c).Get(constants.SessionKeyLoggedIn).(bool); !loggedIn {
			response.RedirectToLogin(c, path)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler renders the error page for failures handlers attached with
// c.Error and did not answer themselves.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Error("request %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path,
			c.GetString(constants.ContextKeyRequestID), err)

		if c.Writer.Written() {
			return
		}

		message := "The attendance sheet could not be reached. Please try again."
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeSheetNotFound {
			message = appErr.Message
		}
		response.ServerError(c, message)
	}
}
