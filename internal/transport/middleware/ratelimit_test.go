package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hit(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(okHandler())
	for i := 0; i < 10; i++ {
		rec := hit(handler, "10.0.0.1:40000")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}
}

func TestRateLimiter_OverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(5)(okHandler())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.2:40000").Code)
	}

	rec := hit(handler, "10.0.0.2:40000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_PortDoesNotSplitBuckets(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// Same client reconnecting from a new source port must share a bucket.
	handler := rl.Limit(2)(okHandler())
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.3:40000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.3:40001").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.3:40002").Code)
}

func TestRateLimiter_ClientsIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())
	hit(handler, "10.0.0.4:40000")
	hit(handler, "10.0.0.4:40000")

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.5:40000").Code)
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := rl.Limit(60)(okHandler())
	for i := 0; i < 60; i++ {
		hit(handler, "10.0.0.6:40000")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.6:40000").Code)

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.6:40000").Code)
}
