package middleware

import (
	"time"

	"htmldeploy/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		telemetry.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
