package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
	"github.com/poh0/bird-wrapper/client/internal/types"
)

// GetProfile retrieves the profile of the token's owner.
func GetProfile(ctx context.Context, apiClient *resty.Client, token string, loc types.Location) (json.RawMessage, error) {
	const op = "fetch profile"
	if token == "" {
		return nil, clienterrors.NewUnauthorizedError(op)
	}
	locHeader, err := loc.Header()
	if err != nil {
		return nil, clienterrors.NewValidationError(op, "encode location: "+err.Error())
	}

	req := apiClient.R().
		SetHeader("Authorization", bearer(token)).
		SetHeader("Location", locHeader)
	body, _, err := execute(ctx, op, req, http.MethodGet, ProfilePath)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
