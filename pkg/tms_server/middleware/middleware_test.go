package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freightline/tms/pkg/tms_server/middleware"
	"github.com/stretchr/testify/assert"
)

func TestResponseInterceptor(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	recorder := httptest.NewRecorder()
	interceptor := middleware.NewResponseInterceptor(recorder)
	handler.ServeHTTP(interceptor, httptest.NewRequest("GET", "/api/shipments", nil))
	assert.True(t, interceptor.IsSystemError())
	assert.Equal(t, "500 boom\n", interceptor.Returned())
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	recorder = httptest.NewRecorder()
	interceptor = middleware.NewResponseInterceptor(recorder)
	http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}).ServeHTTP(interceptor, httptest.NewRequest("GET", "/api/health", nil))
	assert.False(t, interceptor.IsSystemError())
	assert.Equal(t, "200", interceptor.Returned())

	recorder = httptest.NewRecorder()
	middleware.Log(middleware.Trace(handler)).ServeHTTP(recorder, httptest.NewRequest("GET", "/api/shipments", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORS(middleware.CORSConfig{AllowedOrigins: []string{"https://dispatch.example"}})(next)

	// Preflight from an allowed origin.
	request := httptest.NewRequest(http.MethodOptions, "/api/shipments", nil)
	request.Header.Set("Origin", "https://dispatch.example")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	response := httptest.NewRecorder()
	handler.ServeHTTP(response, request)
	assert.Equal(t, http.StatusNoContent, response.Code)
	assert.Equal(t, "https://dispatch.example", response.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, response.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	// Simple request from an allowed origin.
	request = httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
	request.Header.Set("Origin", "https://dispatch.example")
	response = httptest.NewRecorder()
	handler.ServeHTTP(response, request)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "https://dispatch.example", response.Header().Get("Access-Control-Allow-Origin"))

	// Other origins get no CORS headers.
	request = httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
	request.Header.Set("Origin", "https://evil.example")
	response = httptest.NewRecorder()
	handler.ServeHTTP(response, request)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Empty(t, response.Header().Get("Access-Control-Allow-Origin"))

	request = httptest.NewRequest(http.MethodOptions, "/api/shipments", nil)
	request.Header.Set("Origin", "https://evil.example")
	response = httptest.NewRecorder()
	handler.ServeHTTP(response, request)
	assert.Equal(t, http.StatusForbidden, response.Code)

	// Wildcard.
	handler = middleware.CORS(middleware.CORSConfig{AllowedOrigins: []string{"*"}})(next)
	request = httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
	request.Header.Set("Origin", "https://anyone.example")
	response = httptest.NewRecorder()
	handler.ServeHTTP(response, request)
	assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: 0.01, Burst: 2})(next)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		response := httptest.NewRecorder()
		handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/shipments", nil))
		codes = append(codes, response.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Disabled.
	handler = middleware.RateLimit(middleware.RateLimitConfig{})(next)
	for i := 0; i < 10; i++ {
		response := httptest.NewRecorder()
		handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/shipments", nil))
		assert.Equal(t, http.StatusOK, response.Code)
	}
}
