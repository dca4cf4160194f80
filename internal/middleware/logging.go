package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one line per request once the handler chain has finished.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Debugf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
