package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET(HealthPath, func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/contracts", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.PUT("/api/contracts/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.POST("/api/contracts", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := []struct {
		name   string
		method string
		path   string
		level  string
		route  string
	}{
		{"list at info", http.MethodGet, "/api/contracts", "INFO", "/api/contracts"},
		{"validation failure at warn", http.MethodPut, "/api/contracts/CONTRACT-1000", "WARN", "/api/contracts/:id"},
		{"server error at error", http.MethodPost, "/api/contracts", "ERROR", "/api/contracts"},
		{"health at debug", http.MethodGet, HealthPath, "DEBUG", HealthPath},
		{"unmatched path keeps raw path", http.MethodGet, "/nope", "WARN", "/nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.Reset()
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))

			out := logs.String()
			assert.Contains(t, out, `"msg":"request completed"`)
			assert.Contains(t, out, `"level":"`+tt.level+`"`)
			assert.Contains(t, out, `"route":"`+tt.route+`"`)
			assert.Contains(t, out, `"request_id":"`)
		})
	}
}

func TestRequestLoggerSearchQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := captureLogs(t)

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/api/contracts", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/contracts?q=acme&sort=value", nil))

	out := logs.String()
	assert.Contains(t, out, `"search":"acme"`)
	assert.Contains(t, out, `"query":"q=acme&sort=value"`)
}

func TestRequestLoggerContractID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/api/contracts/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/contracts/CONTRACT-1000", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := logs.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"contract_id":"CONTRACT-1000"`)
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLevel("/api/contracts", http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, accessLevel("/api/contracts", http.StatusTooManyRequests))
	assert.Equal(t, slog.LevelError, accessLevel(HealthPath, http.StatusServiceUnavailable))
	assert.Equal(t, slog.LevelDebug, accessLevel(HealthPath, http.StatusOK))
}
