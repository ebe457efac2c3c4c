package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/service"
)

// Metrics records console request metrics. Requests that matched no route
// are grouped under one label so probes cannot blow up cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
