package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSExposesRegistrationHeaders(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://localhost/v1/registration/pdf", nil)
	req.Header.Set("Origin", "https://club.example.com")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !called {
		t.Fatal("expected downstream handler to run")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	exposed := resp.Header().Get("Access-Control-Expose-Headers")
	for _, want := range []string{"Link", "Location", "X-Request-Id", "Content-Disposition"} {
		if !containsHeader(exposed, want) {
			t.Fatalf("expected %q exposed, got %q", want, exposed)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	tests := []struct {
		method  string
		headers string
	}{
		{http.MethodPost, "Content-Type, Authorization"},
		{http.MethodDelete, "Authorization"},
		{http.MethodGet, "X-Request-Id, traceparent"},
	}
	for _, tt := range tests {
		called := false
		h := CORS()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

		req := httptest.NewRequest(http.MethodOptions, "http://localhost/v1/registration", nil)
		req.Header.Set("Origin", "https://club.example.com")
		req.Header.Set("Access-Control-Request-Method", tt.method)
		req.Header.Set("Access-Control-Request-Headers", tt.headers)
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, req)

		if called {
			t.Fatalf("%s: preflight must not reach the handler", tt.method)
		}
		if got := resp.Header().Get("Access-Control-Allow-Methods"); !containsHeader(got, tt.method) {
			t.Fatalf("%s: expected method allowed, got %q", tt.method, got)
		}
		allowed := resp.Header().Get("Access-Control-Allow-Headers")
		for h := range strings.SplitSeq(tt.headers, ",") {
			if !containsHeader(allowed, strings.TrimSpace(h)) {
				t.Fatalf("%s: expected header %q allowed, got %q", tt.method, h, allowed)
			}
		}
	}
}

func TestVaryAddsAccept(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.WriteHeader(http.StatusCreated)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/clubs", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected downstream status, got %d", resp.Code)
	}
	vary := resp.Header().Values("Vary")
	if len(vary) != 2 || vary[0] != "Accept" || vary[1] != "Origin" {
		t.Fatalf("expected Accept then Origin, got %v", vary)
	}
}
