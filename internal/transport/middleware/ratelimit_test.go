package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fire sends one request from addr through the handler and returns the
// recorder.
func fire(handler http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries/7/submit", nil)
	req.RemoteAddr = addr
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_BurstUpToCap(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(okHandler())

	for i := 0; i < 10; i++ {
		if rec := fire(handler, "10.0.0.1:4000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondCap(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		fire(handler, "10.0.0.2:4000")
	}

	rec := fire(handler, "10.0.0.2:4000")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After hint on the 429")
	}
}

func TestRateLimiter_BucketsPerAddress(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())

	fire(handler, "10.0.0.3:4000")
	fire(handler, "10.0.0.3:4000")

	if rec := fire(handler, "10.0.0.4:4000"); rec.Code != http.StatusOK {
		t.Errorf("fresh address should not share a drained bucket, got %d", rec.Code)
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		fire(handler, "10.0.0.5:4000")
	}

	time.Sleep(1100 * time.Millisecond)

	if rec := fire(handler, "10.0.0.5:4000"); rec.Code != http.StatusOK {
		t.Errorf("expected a refilled token after a second, got %d", rec.Code)
	}
}
