package types

// ------------------------------
// Request Types
// ------------------------------

// EmailAuthRequest starts the email login flow. First-time addresses are
// registered as new accounts.
type EmailAuthRequest struct {
	Email string `json:"email"`
}

// MagicLinkRequest exchanges the one-time token from the login email.
type MagicLinkRequest struct {
	Token string `json:"token"`
}

// NearbyQuery holds the query parameters of the nearby endpoint.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	Radius    int // meters
}

// DefaultRadius is used when a caller passes a non-positive radius.
const DefaultRadius = 500
