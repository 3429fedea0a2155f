package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Types
// ------------------------------

// EmailAuthResponse is the subset of the email auth payload the client reads.
type EmailAuthResponse struct {
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh,omitempty"`
	} `json:"tokens"`
	ValidationRequired bool `json:"validation_required"`
}

// EmailAuthResult is returned by the email login. Data is the unmodified
// response body.
type EmailAuthResult struct {
	Email              string          `json:"email"`
	Data               json.RawMessage `json:"data"`
	AccessToken        string          `json:"-"`
	ValidationRequired bool            `json:"validationRequired"`
}

// MagicLinkResponse is the subset of the magic-link payload the client reads.
// The rest of the body is profile data.
type MagicLinkResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// nearbyEnvelope is the object form of the nearby payload.
type nearbyEnvelope struct {
	Birds []Vehicle `json:"birds"`
}

// DecodeVehicles parses a nearby payload. Both a bare array and an object
// with a "birds" array are accepted.
func DecodeVehicles(raw json.RawMessage) ([]Vehicle, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty nearby payload")
	}
	if trimmed[0] == '[' {
		var vs []Vehicle
		if err := json.Unmarshal(trimmed, &vs); err != nil {
			return nil, fmt.Errorf("decode vehicles: %w", err)
		}
		return vs, nil
	}
	var env nearbyEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return env.Birds, nil
}
