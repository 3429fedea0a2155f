package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
)

// Endpoint paths, relative to the auth or API base URL.
const (
	EmailAuthPath = "/api/v1/auth/email" // auth base
	MagicLinkPath = "/auth/magic-link/use"
	ProfilePath   = "/user"
	NearbyPath    = "/bird/nearby"
)

// execute sends req and turns every non-2xx outcome into a *clienterrors.Error.
// The body of a successful response is returned as read.
func execute(ctx context.Context, op string, req *resty.Request, method, path string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, clienterrors.NewNetworkError(op, err)
	}
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, 0, clienterrors.NewNetworkError(op, err)
	}
	if !resp.IsSuccess() {
		return nil, resp.StatusCode(), clienterrors.NewHTTPError(op, resp.StatusCode(), resp.String())
	}
	return resp.Body(), resp.StatusCode(), nil
}

func bearer(token string) string { return "Bearer " + token }
