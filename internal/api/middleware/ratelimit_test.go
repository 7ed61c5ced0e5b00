package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerSession(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(sessionID string) int {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/promo", nil)
		r = r.WithContext(WithSessionID(r.Context(), sessionID))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusOK, call("b"))
}

func TestRateLimiter_Unlimited(t *testing.T) {
	limiter := NewRateLimiter(0, 1)
	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("k"))
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(10, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("old")
	now = now.Add(time.Hour)
	limiter.Allow("fresh")

	assert.Equal(t, 1, limiter.EvictIdle(now.Add(-time.Minute)))
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "fresh")
}

func TestClientKey_FallsBackToIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "ip:10.0.0.1", clientKey(r))
}
