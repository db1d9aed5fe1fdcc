package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterRejectsAboveBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var codes []int
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/grp-1/balance", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests within burst, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request limited, got %v", codes)
	}
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Real-IP", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected fresh bucket for %s, got %d", ip, rr.Code)
		}
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.9:1234"

	if got := clientIP(req); got != "192.0.2.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}

	req.Header.Set("X-Real-IP", "10.0.0.5")
	if got := clientIP(req); got != "10.0.0.5" {
		t.Fatalf("expected X-Real-IP, got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "10.0.0.6")
	if got := clientIP(req); got != "10.0.0.6" {
		t.Fatalf("expected X-Forwarded-For to win, got %s", got)
	}
}
