// Package client is a Go binding for the Bird rider API: email login,
// magic-link verification, profile lookup and nearby-vehicle search.
//
// Every operation is a single request/response round trip. Failures are
// returned as *Error values whose Kind is one of ValidationError,
// UnauthorizedError or TransportError; nothing is retried.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/poh0/bird-wrapper/client/internal/api"
	"github.com/poh0/bird-wrapper/client/internal/types"
)

const (
	DefaultAuthBaseURL = "https://api-auth.prod.birdapp.com"
	DefaultAPIBaseURL  = "https://api-bird.prod.birdapp.com"
	DefaultTimeout     = 30 * time.Second
)

// Config enumerates the overrides New recognizes. The zero value talks to
// the production endpoints.
type Config struct {
	AuthBaseURL string            // Optional; if empty, DefaultAuthBaseURL is used
	APIBaseURL  string            // Optional; if empty, DefaultAPIBaseURL is used
	Headers     map[string]string // Merged over the default headers; these win
	Timeout     time.Duration     // Optional; if zero, DefaultTimeout is used
	Location    *Location         // Optional; if nil, DefaultLocation is used
}

// Client talks to the auth and API hosts on behalf of one simulated device.
type Client struct {
	authBaseURL string
	apiBaseURL  string
	headers     map[string]string
	http        *http.Client
	auth        *resty.Client // scoped to authBaseURL
	api         *resty.Client // scoped to apiBaseURL
	session     *Session
	logger      zerolog.Logger

	deviceID    string
	accessToken string // from WithAccessToken, copied into the session

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client from cfg. Additional options are applied after
// cfg and may override it.
func New(cfg Config, opts ...Option) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		authBaseURL: strings.TrimRight(orDefault(cfg.AuthBaseURL, DefaultAuthBaseURL), "/"),
		apiBaseURL:  strings.TrimRight(orDefault(cfg.APIBaseURL, DefaultAPIBaseURL), "/"),
		http:        &http.Client{Timeout: timeout},
		deviceID:    strings.ToUpper(uuid.NewString()),
		logger:      zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.headers = defaultHeaders(c.deviceID)
	for k, v := range cfg.Headers {
		c.headers[http.CanonicalHeaderKey(k)] = v
	}
	// A Device-Id override is the device identity for the whole session.
	c.deviceID = c.headers["Device-Id"]

	loc := cfg.Location
	if loc == nil {
		d := types.DefaultLocation
		loc = &d
	}
	c.session = newSession(c.deviceID, loc)
	if c.accessToken != "" {
		c.session.SetAccessToken(c.accessToken)
	}

	c.auth = resty.NewWithClient(c.http).SetBaseURL(c.authBaseURL).SetHeaders(c.headers)
	c.api = resty.NewWithClient(c.http).SetBaseURL(c.apiBaseURL).SetHeaders(c.headers)

	c.logger.Debug().
		Str("device_id", c.deviceID).
		Str("auth_base_url", c.authBaseURL).
		Str("api_base_url", c.apiBaseURL).
		Dur("timeout", c.http.Timeout).
		Msg("bird client created")
	return c, nil
}

// defaultHeaders mimics the iOS rider app.
func defaultHeaders(deviceID string) map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Device-Id":    deviceID,
		"Platform":     "ios",
		"App-Name":     "bird",
		"App-Version":  "4.195",
		"App-Type":     "rider",
		"User-Agent":   "Bird/4.195.0 (co.bird.Ride; build:5; iOS 14.3.0) Alamofire/4.195.0",
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Session exposes the client's session state.
func (c *Client) Session() *Session { return c.session }

// DeviceID returns the simulated device identifier sent on every request.
func (c *Client) DeviceID() string { return c.session.DeviceID() }

// Headers returns a copy of the headers sent on every request.
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}

// SetAccessToken stores token in the session.
func (c *Client) SetAccessToken(token string) { c.session.SetAccessToken(token) }

// SetLocation stores lat/lon in the session.
func (c *Client) SetLocation(lat, lon float64) { c.session.SetLocation(lat, lon) }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Authentication - delegated to internal/api
// --------------------------------------------------------------------

// AuthenticateByEmail logs in with email, registering the address if it is
// new. When the backend does not ask for further validation the returned
// access token is stored in the session; otherwise call VerifyEmailToken with
// the token from the login email.
func (c *Client) AuthenticateByEmail(ctx context.Context, email string) (*EmailAuthResult, error) {
	const op = "authenticate by email"
	start := time.Now()
	res, err := api.AuthEmail(ctx, c.auth, email)
	c.observe(op, start, err)
	if err != nil {
		return nil, err
	}
	if !res.ValidationRequired && res.AccessToken != "" {
		c.session.SetAccessToken(res.AccessToken)
	}
	c.logger.Debug().
		Str("op", op).
		Bool("validation_required", res.ValidationRequired).
		Bool("token_stored", c.session.Authenticated()).
		Msg("email authentication completed")
	return res, nil
}

// VerifyEmailToken exchanges the one-time token from the login email for an
// access token, stores it and returns the raw profile/token payload.
func (c *Client) VerifyEmailToken(ctx context.Context, token string) (json.RawMessage, error) {
	const op = "verify email token"
	start := time.Now()
	raw, access, err := api.UseMagicLink(ctx, c.api, token)
	c.observe(op, start, err)
	if err != nil {
		return nil, err
	}
	if access != "" {
		c.session.SetAccessToken(access)
	}
	return raw, nil
}

// --------------------------------------------------------------------
// Authenticated operations - delegated to internal/api
// --------------------------------------------------------------------

// FetchProfile returns the raw profile JSON of the logged-in rider. The
// Location header carries the stored location, or DefaultLocation if none.
func (c *Client) FetchProfile(ctx context.Context) (json.RawMessage, error) {
	const op = "fetch profile"
	token, loc := c.session.snapshot()
	if loc == nil {
		d := types.DefaultLocation
		loc = &d
	}
	start := time.Now()
	raw, err := api.GetProfile(ctx, c.api, token, *loc)
	c.observe(op, start, err)
	return raw, err
}

// FetchNearbyVehicles lists vehicles within radius meters of the stored
// location. A non-positive radius means DefaultRadius. The payload is
// returned unmodified; see DecodeVehicles for a typed view.
func (c *Client) FetchNearbyVehicles(ctx context.Context, radius int) (json.RawMessage, error) {
	const op = "fetch nearby vehicles"
	token, loc := c.session.snapshot()
	if token == "" {
		err := newUnauthorizedError(op)
		c.observe(op, time.Now(), err)
		return nil, err
	}
	if loc == nil {
		err := newValidationError(op, "no location set, call SetLocation or pass coordinates")
		c.observe(op, time.Now(), err)
		return nil, err
	}
	start := time.Now()
	raw, err := api.Nearby(ctx, c.api, token, *loc, radius)
	c.observe(op, start, err)
	return raw, err
}

// FetchNearbyVehiclesAt is FetchNearbyVehicles at explicit coordinates. The
// session location is neither read nor changed.
func (c *Client) FetchNearbyVehiclesAt(ctx context.Context, lat, lon float64, radius int) (json.RawMessage, error) {
	const op = "fetch nearby vehicles"
	token, _ := c.session.AccessToken()
	start := time.Now()
	raw, err := api.Nearby(ctx, c.api, token, types.NewLocation(lat, lon), radius)
	c.observe(op, start, err)
	return raw, err
}

// observe records metrics and a debug log line for one operation.
func (c *Client) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := outcomeLabel(err)
	requestsTotal.WithLabelValues(op, outcome).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	var ev *zerolog.Event
	if err != nil {
		ev = c.logger.Warn().Err(err)
	} else {
		ev = c.logger.Debug()
	}
	ev.Str("op", op).Str("outcome", outcome).Dur("elapsed", elapsed).Msg("bird api call")
}
