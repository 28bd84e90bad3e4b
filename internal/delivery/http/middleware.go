package delivery_http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Debug("Handled HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}

func RequestMetrics(m metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Route template keeps the label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		m.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
