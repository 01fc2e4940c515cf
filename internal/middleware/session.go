package middleware

import (
	"net/http" // HTTP status codes

	"github.com/daryan97/bobatea/internal/session"

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireUser gates a route on an authenticated session. Anonymous clients
// get a flash message and a redirect to the login page; the requested
// action is discarded.
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := sessions.CurrentUser(c)
		if !ok {
			sessions.Flash(c, "Please log in first!")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("username", username) // Store username in context
		c.Next()                    // Proceed to the next handler
	}
}
