package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newTestClient returns a resty client scoped to baseURL, as the SDK builds them.
func newTestClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
}

// newFailingClient returns a resty client whose transport always errors.
func newFailingClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: &errRT{}}).
		SetBaseURL("http://example.com")
}

func asError(err error, target **clienterrors.Error) bool { return errors.As(err, target) }
