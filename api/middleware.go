package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evparts_admin/internal/auth"
)

const identityKey = "identity"

// Protect verifies the bearer token and attaches the caller identity
// to the request context.
func Protect(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied. No token provided."})
			return
		}

		ident, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid or expired token."})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireLevel rejects callers whose permission level is narrower than
// required. Must run after Protect.
func RequireLevel(required auth.Level) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated."})
			return
		}
		if !ident.Level.Allows(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions."})
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*auth.Identity)
	return ident, ok
}
