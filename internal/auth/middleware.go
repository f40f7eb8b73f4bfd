package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"

// ContextUserKey is the gin context key holding the authenticated user id
const ContextUserKey = "user_id"

// RequireAuth ensures the request carries an authenticated session and
// exposes the user id to downstream handlers. This is a JSON API, so an
// unauthenticated request gets a 401 body rather than a redirect.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(sessionUserKey).(string)

		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}
