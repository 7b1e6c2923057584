package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS())
	router.PUT("/api/contracts/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contracts/CONTRACT-1000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected allow origin *, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != RequestIDHeader {
		t.Errorf("Expected %s to be exposed, got %q", RequestIDHeader, got)
	}
}

func TestNoCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NoCache())
	router.GET("/api/contracts", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		path     string
		expected string
	}{
		{"/api/contracts", "no-cache, no-store, must-revalidate"},
		{"/health", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if got := w.Header().Get("Cache-Control"); got != tt.expected {
				t.Errorf("Expected Cache-Control %q, got %q", tt.expected, got)
			}
		})
	}
}
