package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware_PreflightAllowsAnyOrigin(t *testing.T) {
	api := createTestApi(t, testFeed())
	server := httptest.NewServer(api.Router())
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/routes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://transmetro-frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddleware_Blocks(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/routes", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest(http.MethodGet, "/routes", nil)
	reqA.RemoteAddr = "10.0.0.1:54321"
	handler.ServeHTTP(first, reqA)
	assert.Equal(t, http.StatusOK, first.Code)

	// A different client has its own bucket.
	second := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodGet, "/routes", nil)
	reqB.RemoteAddr = "10.0.0.2:54321"
	handler.ServeHTTP(second, reqB)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimitMiddleware_NegativeRateDisablesLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(-1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/routes", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	api := createTestApi(t, testFeed())
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
