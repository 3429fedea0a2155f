package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeoutAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	// debug logging wraps transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2, err := New(Config{}, WithHTTPClient(&http.Client{Transport: rt}), WithHTTPTimeout(2*time.Second), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithDebugLogging_NotStacked(t *testing.T) {
	c, err := New(Config{}, WithDebugLogging(true), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := c.http.Transport.(*debugTransport)
	if !ok {
		t.Fatalf("expected debugTransport")
	}
	if _, nested := dt.base.(*debugTransport); nested {
		t.Fatalf("debug transport wrapped twice")
	}
}

func TestWithAccessTokenAndDeviceID(t *testing.T) {
	c, err := New(Config{}, WithAccessToken("T"), WithDeviceID("dev-1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tok, ok := c.Session().AccessToken(); !ok || tok != "T" {
		t.Fatalf("expected preset token, got %q", tok)
	}
	if c.DeviceID() != "dev-1" || c.Headers()["Device-Id"] != "dev-1" {
		t.Fatalf("device id option not applied")
	}
}

func TestRedactAuthorization(t *testing.T) {
	dump := []byte("GET /user HTTP/1.1\r\nHost: x\r\nAuthorization: Bearer secret-token\r\nLocation: {}\r\n\r\n")
	got := redactAuthorization(dump)
	if strings.Contains(got, "secret-token") {
		t.Fatalf("token leaked: %q", got)
	}
	if !strings.Contains(got, "Authorization: Bearer [REDACTED]\r\n") || !strings.Contains(got, "Location: {}") {
		t.Fatalf("unexpected redaction: %q", got)
	}
}
