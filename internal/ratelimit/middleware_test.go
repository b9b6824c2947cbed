package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_RejectsOverQuota(t *testing.T) {
	clock := newTestClock()
	l := NewLimiterWithClock(time.Minute, 2, clock.Now)
	handler := Middleware(l)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t,
		`{"error":"too many requests, please try again later","code":"TOO_MANY_REQUESTS"}`,
		rec.Body.String())
}

func TestMiddleware_AllowsAfterWindow(t *testing.T) {
	clock := newTestClock()
	l := NewLimiterWithClock(time.Minute, 1, clock.Now)
	handler := Middleware(l)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	clock.Advance(time.Minute + time.Millisecond)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"forwarded-for first entry wins", "9.9.9.9, 10.0.0.1", "1.2.3.4:5678", "9.9.9.9"},
		{"forwarded-for single entry", "9.9.9.9", "1.2.3.4:5678", "9.9.9.9"},
		{"forwarded-for with spaces", "  9.9.9.9  ,10.0.0.1", "1.2.3.4:5678", "9.9.9.9"},
		{"falls back to remote addr host", "", "1.2.3.4:5678", "1.2.3.4"},
		{"remote addr without port", "", "1.2.3.4", "1.2.3.4"},
		{"no identity at all", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, ClientKey(req))
		})
	}
}
