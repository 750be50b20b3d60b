package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alimentos/backend/internal/metrics"
)

// Metrics records count and latency per matched route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
