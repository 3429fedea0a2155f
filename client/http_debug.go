package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response to the global zerolog
// logger at debug level.
//
// Activation:
//   - WithDebugLogging(true)
//   - BIRD_DEBUG=true or DEBUG=true in the environment
//
// Bodies are logged in full, including email addresses and magic-link
// tokens. The Authorization header is redacted. Do not enable in production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redactAuthorization(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

var authorizationLine = regexp.MustCompile(`(?mi)^(Authorization:[ \t]*\S+)[ \t]+[^\r\n]+`)

// redactAuthorization hides the credential of any Authorization header line,
// keeping the scheme.
func redactAuthorization(dump []byte) string {
	return authorizationLine.ReplaceAllString(string(dump), "$1 [REDACTED]")
}

// debugLoggingRequested reports whether BIRD_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("BIRD_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
