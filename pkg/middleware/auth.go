package middleware

import (
	"net/http"
	"strings"

	"craftledger/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader    = "X-User-ID"
	CreatorIDHeader = "X-Creator-ID"
)

// IdentityMiddleware sets user_id and creator_id on the context. With a
// jwtService every request must carry a valid bearer token and the identity
// headers are ignored. Without one the X-User-ID and X-Creator-ID headers are
// used, falling back to the demo identity.
func IdentityMiddleware(jwtService *jwt.Service, demoUserID, demoCreatorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtService == nil {
			c.Set("user_id", headerOr(c, UserIDHeader, demoUserID))
			c.Set("creator_id", headerOr(c, CreatorIDHeader, demoCreatorID))
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("creator_id", claims.CreatorID)
		c.Next()
	}
}

func headerOr(c *gin.Context, name, fallback string) string {
	if v := strings.TrimSpace(c.GetHeader(name)); v != "" {
		return v
	}
	return fallback
}
