package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping the
// path label bounded.
const unmatchedRoute = "unmatched"

// RecordMetrics tracks request count, latency and in-flight requests per
// route template.
func RecordMetrics(c *gin.Context) {
	start := time.Now()
	metrics.HTTPRequestsInFlight.Inc()
	defer metrics.HTTPRequestsInFlight.Dec()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = unmatchedRoute
	}
	status := strconv.Itoa(c.Writer.Status())

	metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
