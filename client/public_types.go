package client

import (
	"encoding/json"

	"github.com/poh0/bird-wrapper/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	Location        = types.Location
	Vehicle         = types.Vehicle
	VehicleCoord    = types.VehicleCoord
	Float64String   = types.Float64String
	EmailAuthResult = types.EmailAuthResult
)

// DefaultRadius is the nearby search radius in meters used for non-positive input.
const DefaultRadius = types.DefaultRadius

// DefaultLocation is the session location until SetLocation is called.
var DefaultLocation = types.DefaultLocation

// NewLocation returns a Location at lat/lon with default altitude, accuracy,
// speed and heading.
func NewLocation(lat, lon float64) Location { return types.NewLocation(lat, lon) }

// DecodeVehicles parses the payload of FetchNearbyVehicles into a typed list.
func DecodeVehicles(raw json.RawMessage) ([]Vehicle, error) { return types.DecodeVehicles(raw) }
