package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
	"github.com/poh0/bird-wrapper/client/internal/types"
)

// Nearby lists vehicles within radius meters of loc. The Location header
// carries loc itself, so the backend sees the same coordinates as the query.
// The payload is returned unmodified.
func Nearby(ctx context.Context, apiClient *resty.Client, token string, loc types.Location, radius int) (json.RawMessage, error) {
	const op = "fetch nearby vehicles"
	if token == "" {
		return nil, clienterrors.NewUnauthorizedError(op)
	}
	if !finite(loc.Latitude) || !finite(loc.Longitude) {
		return nil, clienterrors.NewValidationError(op, "please provide latitude and longitude")
	}
	if radius <= 0 {
		radius = types.DefaultRadius
	}
	locHeader, err := loc.Header()
	if err != nil {
		return nil, clienterrors.NewValidationError(op, "encode location: "+err.Error())
	}

	req := apiClient.R().
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
			"radius":    strconv.Itoa(radius),
		}).
		SetHeader("Authorization", bearer(token)).
		SetHeader("Location", locHeader)
	body, _, err := execute(ctx, op, req, http.MethodGet, NearbyPath)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
