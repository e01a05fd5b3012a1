package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Sakibh04/Job-Application-Tracker/internal/session"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// Auth gates a route group on a valid session cookie and stashes the session
// identity in the gin context for handlers.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Error(c, 401, "Authentication required")
			c.Abort()
			return
		}

		sess, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, 401, "Authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, sess.UserID)
		c.Set(ContextUsernameKey, sess.Username)
		c.Next()
	}
}
