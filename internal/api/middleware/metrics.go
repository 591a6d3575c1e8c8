package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/internal/pkg/metrics"
)

// Metrics counts API requests by method and response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.APIRequestsTotal.WithLabelValues(
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
