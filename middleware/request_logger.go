package middleware

import (
	"log/slog"
	"time"

	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/gin-gonic/gin"
)

// HealthPath is logged at debug level so probes do not flood the access log.
const HealthPath = "/health"

// RequestLogger writes one access log line per request. The level follows the
// status: 5xx error, 4xx warn, everything else info.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"route", routeOf(c),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if q := c.Query("q"); q != "" {
			attrs = append(attrs, "search", q)
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			attrs = append(attrs, "query", raw)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		logger.WithContext(ctx).Log(ctx, accessLevel(c.Request.URL.Path, status), "request completed", attrs...)
	}
}

// routeOf prefers the matched pattern so per-contract paths aggregate.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case path == HealthPath:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
