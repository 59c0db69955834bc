package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one log line per request, with server errors
// raised to warn.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client", c.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			log.Warn("request failed", attrs...)
			return
		}
		log.Info("request", attrs...)
	}
}
