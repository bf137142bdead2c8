package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"pay-chain.backend/internal/metrics"
)

// MetricsMiddleware records request totals and latency per route.
// FullPath keeps the label set bounded to registered route templates.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
