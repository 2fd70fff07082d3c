package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter throttles requests per client address using token buckets.
// Buckets refill continuously, so short bursts up to the per-minute cap
// are allowed.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	touched  time.Time
}

// NewRateLimiter creates a limiter and starts a janitor that evicts
// buckets idle longer than ten minutes. Call Stop on shutdown.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go rl.sweep(sweepEvery)
	return rl
}

// Stop terminates the janitor goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware enforcing maxPerMinute requests per remote address.
// Rejected requests get a 429 with a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(r.RemoteAddr, maxPerMinute) {
				wait := 60.0/float64(maxPerMinute) + 1
				w.Header().Set("Retry-After", strconv.Itoa(int(wait)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(addr string, maxPerMinute int) bool {
	rl.mu.Lock()
	b, ok := rl.buckets[addr]
	if !ok {
		cap := float64(maxPerMinute)
		b = &bucket{
			tokens:   cap,
			capacity: cap,
			perSec:   cap / 60.0,
			touched:  time.Now(),
		}
		rl.buckets[addr] = b
	}
	rl.mu.Unlock()

	return b.take()
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for addr, b := range rl.buckets {
				b.mu.Lock()
				stale := b.touched.Before(cutoff)
				b.mu.Unlock()
				if stale {
					delete(rl.buckets, addr)
				}
			}
			rl.mu.Unlock()
		}
	}
}
