package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Seeder interface {
	EnsureSeed(ctx context.Context) error
}

// SeedMiddleware makes sure fixture data exists before any handler reads the store.
func SeedMiddleware(seeder Seeder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seeder.EnsureSeed(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
			c.Abort()
			return
		}
		c.Next()
	}
}
