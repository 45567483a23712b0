package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/common/logger"
)

// Logger writes one access log line per request. The request id is taken
// from traceHeader when the caller sent one.
func Logger(traceHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		if traceHeader != "" {
			if reqID := c.GetHeader(traceHeader); reqID != "" {
				ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: &reqID})
				c.Request = c.Request.WithContext(ctx)
			}
		}

		c.Next()

		status := c.Writer.Status()
		// the auth middleware may have added company and user fields
		ctx := c.Request.Context()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request error", attrs...)
		default:
			slog.InfoContext(ctx, "request", attrs...)
		}
	}
}
