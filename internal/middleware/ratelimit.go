package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-IP limiter for the auth endpoints.
// Windows are tracked per remote address and swept periodically so the
// map does not grow with one-off clients.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	done    chan struct{}
	once    sync.Once
}

type window struct {
	count   int
	started time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		done:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Close stops the background sweeper. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.period)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, w := range rl.windows {
				if time.Since(w.started) > rl.period {
					delete(rl.windows, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// allow records one request from ip and reports whether it is within
// the current window's budget.
func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.started) > rl.period {
		rl.windows[ip] = &window{count: 1, started: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
