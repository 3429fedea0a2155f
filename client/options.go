package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run after Config has been applied and before the resty transports
// are built, so they see and may replace the underlying *http.Client.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout bounds
// the total time spent on a single HTTP request. The value must be greater
// than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client. Useful for custom transports,
// proxies and TLS settings. Both the auth and API transports share it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the global zerolog logger when enabled is true. Authorization
// headers are redacted, bodies are not.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); already {
				return nil
			}
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

// WithLogger sets the logger used for per-operation events. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithDeviceID replaces the generated device identifier, e.g. to keep the
// same simulated device across process restarts.
func WithDeviceID(id string) Option {
	return func(c *Client) error {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("device id cannot be empty")
		}
		c.deviceID = id
		return nil
	}
}

// WithAccessToken starts the session already authenticated.
func WithAccessToken(token string) Option {
	return func(c *Client) error {
		c.accessToken = token
		return nil
	}
}
