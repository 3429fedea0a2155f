package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Location is the simulated GPS fix sent in the Location header.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Accuracy  float64 `json:"accuracy"`
	Speed     float64 `json:"speed"`
	Heading   float64 `json:"heading"`
}

// Defaults for the fields a caller does not usually know. Speed and heading
// of -1 tell the backend the device is stationary with no compass reading.
const (
	DefaultAltitude = 500
	DefaultAccuracy = 100
	DefaultSpeed    = -1
	DefaultHeading  = -1
)

// DefaultLocation is used when the client is constructed without one.
var DefaultLocation = NewLocation(65.013207, 25.472837)

// NewLocation returns a Location at lat/lon with the default altitude,
// accuracy, speed and heading.
func NewLocation(lat, lon float64) Location {
	return Location{
		Latitude:  lat,
		Longitude: lon,
		Altitude:  DefaultAltitude,
		Accuracy:  DefaultAccuracy,
		Speed:     DefaultSpeed,
		Heading:   DefaultHeading,
	}
}

// Header serializes the location for the Location request header.
func (l Location) Header() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Vehicle is a partial view of one entry in the nearby list. The backend
// sends more fields than these; callers who need them should decode the raw
// payload themselves.
type Vehicle struct {
	ID             string        `json:"id"`
	Code           string        `json:"code,omitempty"`
	Model          string        `json:"model,omitempty"`
	Location       VehicleCoord  `json:"location"`
	BatteryLevel   Float64String `json:"battery_level"`
	EstimatedRange Float64String `json:"estimated_range,omitempty"`
	Captive        bool          `json:"captive,omitempty"`
	Nest           *string       `json:"nest_id,omitempty"`
}

// VehicleCoord is where a vehicle is parked.
type VehicleCoord struct {
	Latitude  Float64String `json:"latitude"`
	Longitude Float64String `json:"longitude"`
}

// Float64String handles numbers that the backend sometimes encodes as strings.
type Float64String float64

func (f *Float64String) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*f = 0
	case float64:
		*f = Float64String(val)
	case string:
		if val == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("Float64String: cannot parse %q as float64: %w", val, err)
		}
		*f = Float64String(parsed)
	default:
		return fmt.Errorf("Float64String: unexpected type %T", v)
	}
	return nil
}

func (f Float64String) Float64() float64 {
	return float64(f)
}
