package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const usernameHeader = "X-Username"

const principalKey = "principal"

// PrincipalMiddleware extracts the authenticated username forwarded by the
// edge gateway. Requests without it are rejected before reaching handlers.
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(usernameHeader)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + usernameHeader + " header"})
			return
		}
		c.Set(principalKey, username)
		c.Next()
	}
}

func principal(c *gin.Context) string {
	return c.GetString(principalKey)
}
