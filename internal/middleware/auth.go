package middleware

import (
	"net/http"

	"emberlink/internal/models"
	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// SessionCookie is the contract with clients: its value is the opaque
// session token, nothing else.
const SessionCookie = "SESSION"

// LoadUser resolves the session cookie to a user and stashes it in the
// request context. An absent or unknown token is not an error; the
// request simply proceeds unauthenticated.
func LoadUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			user, err := st.ResolveSession(token)
			if err == nil && user != nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}

// AuthRequired gates privileged operations: no valid session, no entry.
// LoadUser must run earlier in the chain.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the context. Second
// return is false on unauthenticated requests.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
