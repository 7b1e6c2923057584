package middleware

import (
	"context"

	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey       = "request_id"
	maxRequestIDLength = 64
)

// RequestID tags every request with an ID. A caller-supplied ID is echoed back
// only when it is short and made of URL-safe characters; anything else is
// replaced so log lines stay greppable.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		if id := c.Param("id"); id != "" {
			ctx = logger.WithContractID(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
