package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiter_PerAddressBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	hit := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := hit("10.0.0.1:1000"); rr.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, rr.Code)
		}
	}

	rr := hit("10.0.0.1:1000")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("Over budget: expected 429, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "RATE_LIMITED") {
		t.Errorf("Expected RATE_LIMITED code, got %q", rr.Body.String())
	}

	// Another address has its own window
	if rr := hit("10.0.0.2:1000"); rr.Code != http.StatusOK {
		t.Errorf("Fresh address: expected 200, got %d", rr.Code)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	defer rl.Close()

	if !rl.allow("10.0.0.1:1000") {
		t.Fatal("First request should pass")
	}
	if rl.allow("10.0.0.1:1000") {
		t.Fatal("Second request in window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.allow("10.0.0.1:1000") {
		t.Error("Request after window expiry should pass")
	}
}

func TestRateLimiter_CloseIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Close()
	rl.Close()
}
