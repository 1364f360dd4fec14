package limiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMiddleware_LimitsPerIP(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewIPRateLimiter(ctx, rate.Limit(0.001), 2)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/meeting/join", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do("192.0.2.1:1000"))
	assert.Equal(t, http.StatusNoContent, do("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:1002"))

	assert.Equal(t, http.StatusNoContent, do("192.0.2.2:1000"))
	assert.Equal(t, 2, l.Len())
}

func TestGetLimiter_SameInstance(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewIPRateLimiter(ctx, rate.Limit(1), 1)
	assert.Same(t, l.GetLimiter("a"), l.GetLimiter("a"))
	assert.NotSame(t, l.GetLimiter("a"), l.GetLimiter("b"))
}

func TestEvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewIPRateLimiter(ctx, rate.Limit(1), 1)
	require.True(t, l.GetLimiter("busy").Allow())
	l.GetLimiter("idle")

	removed := l.evictIdle(time.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Len())

	removed = l.evictIdle(time.Now().Add(time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, l.Len())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	r.RemoteAddr = "198.51.100.7:443"
	assert.Equal(t, "198.51.100.7", ClientIP(r))

	r.RemoteAddr = "198.51.100.7"
	assert.Equal(t, "198.51.100.7", ClientIP(r))

	r.RemoteAddr = ""
	assert.Equal(t, "unknown_ip", ClientIP(r))
}
