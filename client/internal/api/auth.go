package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
	"github.com/poh0/bird-wrapper/client/internal/types"
)

// AuthEmail starts the email login. authClient must be scoped to the auth
// base URL. The caller decides whether to keep the returned token.
func AuthEmail(ctx context.Context, authClient *resty.Client, email string) (*types.EmailAuthResult, error) {
	const op = "authenticate by email"
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, clienterrors.NewValidationError(op, "please provide an email")
	}

	req := authClient.R().SetBody(types.EmailAuthRequest{Email: email})
	body, status, err := execute(ctx, op, req, http.MethodPost, EmailAuthPath)
	if err != nil {
		return nil, err
	}

	var ar types.EmailAuthResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, clienterrors.NewDecodeError(op, status, string(body), err)
	}
	return &types.EmailAuthResult{
		Email:              email,
		Data:               json.RawMessage(body),
		AccessToken:        ar.Tokens.Access,
		ValidationRequired: ar.ValidationRequired,
	}, nil
}

// UseMagicLink exchanges a one-time verification token. It returns the raw
// payload and the access token it carries (empty if none).
func UseMagicLink(ctx context.Context, apiClient *resty.Client, token string) (json.RawMessage, string, error) {
	const op = "verify email token"
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, "", clienterrors.NewValidationError(op, "please provide a verification token")
	}

	req := apiClient.R().SetBody(types.MagicLinkRequest{Token: token})
	body, status, err := execute(ctx, op, req, http.MethodPost, MagicLinkPath)
	if err != nil {
		return nil, "", err
	}

	var mr types.MagicLinkResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return nil, "", clienterrors.NewDecodeError(op, status, string(body), err)
	}
	return json.RawMessage(body), mr.Access, nil
}
