package middleware

import (
	"strconv"
	"time"

	"community-hub.backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts, latency and in-flight requests
// labelled by route template
func MetricsMiddleware(m *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.InFlight(1)
		defer m.InFlight(-1)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
