package middleware

import (
	"time"

	"craftledger/pkg/logger"
	"craftledger/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one access-log line per request and records its latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		metrics.CollectRequestMetric(c.Request.Method, route, status, start)
		log.Request(c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP(), c.GetString("user_id"))
	}
}
