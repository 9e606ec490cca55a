package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllow_BurstThenBlocked(t *testing.T) {
	l := New(1, 3)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	for i := 0; i < 3; i++ {
		if !l.Allow("planner-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("planner-a") {
		t.Error("4th request in the same instant should be blocked")
	}
	if !l.Allow("planner-b") {
		t.Error("other keys have their own bucket")
	}
}

func TestAllow_Refills(t *testing.T) {
	l := New(1, 1)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request should be blocked")
	}
	clock = clock.Add(1100 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("bucket should refill after a second")
	}
}

func TestAllow_DisabledWhenRateNotPositive(t *testing.T) {
	l := New(0, 1)
	for i := 0; i < 100; i++ {
		if !l.Allow("k") {
			t.Fatalf("request %d blocked with limiting disabled", i+1)
		}
	}
}

func TestSweep_DropsIdleKeys(t *testing.T) {
	l := New(5, 5)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	l.Allow("old")
	clock = clock.Add(idleAfter + time.Second)
	l.Allow("new")

	if l.Size() != 1 {
		t.Errorf("Size = %d, want 1", l.Size())
	}
}

func TestMiddleware_Returns429(t *testing.T) {
	l := New(1, 1)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	h := l.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("POST", "/projects", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first request: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"forwarded chain", "203.0.113.5, 10.0.0.1", "", "10.0.0.2:1", "203.0.113.5"},
		{"real ip", "", "198.51.100.7", "10.0.0.2:1", "198.51.100.7"},
		{"remote addr", "", "", "192.0.2.1:4321", "192.0.2.1"},
		{"remote without port", "", "", "192.0.2.9", "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
