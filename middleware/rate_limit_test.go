package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RateLimit(5, time.Minute)) // 5 requests per minute
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// Make 5 requests - all should succeed
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, w.Code)
		}
	}

	// 6th request should be rate limited
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
}

func TestRateLimitDifferentIPs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(2, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// Different IPs should have separate limits
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	// New IP should not be rate limited
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Different IP should not be rate limited, got %d", w.Code)
	}
}

func TestNewRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(100, time.Minute)

	if limiter == nil {
		t.Fatal("Expected non-nil limiter")
	}
	if limiter.rate != 100 {
		t.Errorf("Expected rate 100, got %d", limiter.rate)
	}
	if limiter.window != time.Minute {
		t.Errorf("Expected window 1 minute, got %v", limiter.window)
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, time.Minute)
	limiter.now = func() time.Time { return now }
	limiter.windowStart = now

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("Expected first request to be allowed")
	}

	now = now.Add(20 * time.Second)
	ok, retryAfter := limiter.Allow("10.0.0.1")
	if ok {
		t.Fatal("Expected second request to be limited")
	}
	if retryAfter != 40*time.Second {
		t.Errorf("Expected retry after 40s, got %v", retryAfter)
	}

	now = now.Add(40 * time.Second)
	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Error("Expected request to be allowed after window reset")
	}
}

func TestRateLimitRetryAfterHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, time.Hour))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "192.168.1.9:1000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if i == 1 {
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("Expected status 429, got %d", w.Code)
			}
			if w.Header().Get("Retry-After") == "" {
				t.Error("Expected Retry-After header")
			}
		}
	}
}
