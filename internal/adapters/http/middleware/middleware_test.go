package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestRateLimiter_AllowsWithinBudget verifies requests under the rate pass.
func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1:1234") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
}

// TestRateLimiter_DeniesOverBudget verifies the bucket empties.
func TestRateLimiter_DeniesOverBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	rl.Allow("10.0.0.1:1234")
	rl.Allow("10.0.0.1:1234")
	if rl.Allow("10.0.0.1:1234") {
		t.Error("third request allowed, want denied")
	}
}

// TestRateLimiter_PerIP verifies one IP exhausting its bucket does not affect another.
func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	rl.Allow("10.0.0.1:1234")
	rl.Allow("10.0.0.1:1234")
	if !rl.Allow("10.0.0.2:1234") {
		t.Error("second IP denied, want allowed")
	}
}

// TestRateLimitMiddleware_Returns429 verifies denied requests get 429.
func TestRateLimitMiddleware_Returns429(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/announcements", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rr.Code)
	}

	handler.ServeHTTP(httptest.NewRecorder(), req)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rr.Code)
	}
}

// TestSecurityHeaders verifies the standard header set is applied.
func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", rr.Header().Get("X-Frame-Options"))
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", rr.Header().Get("X-Content-Type-Options"))
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy not set")
	}
}
