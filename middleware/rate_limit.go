package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RateLimiter counts requests per client in fixed windows
type RateLimiter struct {
	mu          sync.Mutex
	counts      map[string]int
	windowStart time.Time
	rate        int           // requests per window
	window      time.Duration // time window
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts:      make(map[string]int),
		windowStart: time.Now(),
		rate:        rate,
		window:      window,
		now:         time.Now,
	}
}

// Allow records a request from key. When the window is exhausted it returns
// false and how long until the window resets.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.counts = make(map[string]int)
		l.windowStart = now
	}

	if l.counts[key] >= l.rate {
		return false, l.window - now.Sub(l.windowStart)
	}
	l.counts[key]++
	return true, 0
}

// RateLimit middleware limits requests per IP
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	return RateLimitWith(NewRateLimiter(rate, window))
}

// RateLimitWith uses an existing limiter
func RateLimitWith(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		ok, retryAfter := limiter.Allow(clientIP)
		if !ok {
			logger.Warn(c.Request.Context(), "rate limit exceeded", "client_ip", clientIP)

			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second)/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error:     "Rate limit exceeded. Please try again later.",
				RequestID: GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
