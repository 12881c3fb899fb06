package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/utils"
)

// SessionCookieName is the HttpOnly cookie holding the session JWT.
const SessionCookieName = "token"

const sessionContextKey = "sessionClaims"

// RequireAuth rejects requests without a valid session cookie before any
// handler runs. Handlers behind it can assume CurrentSession succeeds.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := utils.ParseSessionToken(secret, cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(sessionContextKey, claims)
		c.Next()
	}
}

// CurrentSession returns the identity stored by RequireAuth.
func CurrentSession(c *gin.Context) (*utils.SessionClaims, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.SessionClaims)
	return claims, ok
}
