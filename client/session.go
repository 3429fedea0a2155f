package client

import (
	"sync"

	"github.com/poh0/bird-wrapper/client/internal/types"
)

// Session is the mutable state a Client carries between calls: the device
// identifier, the access token and the last known location.
//
// Mutators perform no I/O. Two concurrent calls that both need a token that
// has not been set yet will both fail with an UnauthorizedError; there is no
// readiness gate.
type Session struct {
	mu          sync.RWMutex
	deviceID    string
	accessToken string
	location    *types.Location
}

func newSession(deviceID string, loc *types.Location) *Session {
	s := &Session{deviceID: deviceID}
	if loc != nil {
		l := *loc
		s.location = &l
	}
	return s
}

// DeviceID returns the identifier generated at construction.
func (s *Session) DeviceID() string {
	return s.deviceID
}

// SetAccessToken replaces the bearer token. An empty token clears it.
func (s *Session) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

// AccessToken returns the bearer token and whether one is set.
func (s *Session) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.accessToken != ""
}

// Authenticated reports whether a token is set.
func (s *Session) Authenticated() bool {
	_, ok := s.AccessToken()
	return ok
}

// SetLocation moves the session to lat/lon with default altitude, accuracy,
// speed and heading.
func (s *Session) SetLocation(lat, lon float64) {
	s.SetFullLocation(types.NewLocation(lat, lon))
}

// SetFullLocation replaces every location field.
func (s *Session) SetFullLocation(loc types.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = &loc
}

// ClearLocation forgets the stored location. Nearby lookups without explicit
// coordinates fail with a ValidationError until a new one is set.
func (s *Session) ClearLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = nil
}

// Location returns the stored location and whether one is set.
func (s *Session) Location() (types.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return types.Location{}, false
	}
	return *s.location, true
}

// snapshot reads token and location together so one call sees a consistent pair.
func (s *Session) snapshot() (string, *types.Location) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return s.accessToken, nil
	}
	l := *s.location
	return s.accessToken, &l
}
