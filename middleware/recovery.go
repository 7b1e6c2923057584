package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body written when a request fails outside a handler.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Recovery turns a handler panic into a 500 carrying the request ID, so a
// client report can be matched to the logged stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error(c.Request.Context(), "panic recovered",
				"error", rec,
				"method", c.Request.Method,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Error:     "Internal server error",
				RequestID: GetRequestID(c),
			})
		}()

		c.Next()
	}
}
