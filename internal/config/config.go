package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Prefix is prepended to every environment variable, e.g. BIRD_API_URL.
const Prefix = "BIRD"

// Config holds birdctl settings. Flags override these values.
type Config struct {
	AuthURL string        `envconfig:"AUTH_URL" default:"https://api-auth.prod.birdapp.com"`
	APIURL  string        `envconfig:"API_URL" default:"https://api-bird.prod.birdapp.com"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// Session seed
	AccessToken string `envconfig:"ACCESS_TOKEN" default:""`
	DeviceID    string `envconfig:"DEVICE_ID" default:""`
	Latitude    string `envconfig:"LATITUDE" default:""`
	Longitude   string `envconfig:"LONGITUDE" default:""`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

// New creates a Config from BIRD_* environment variables and validates it.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("BIRD_TIMEOUT must be > 0, got %s", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported BIRD_LOG_FORMAT: %s", c.LogFormat)
	}
	if _, _, _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Debug forces the debug level.
func (c *Config) Level() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unsupported BIRD_LOG_LEVEL: %s", c.LogLevel)
	}
	return lvl, nil
}

// Location returns the configured coordinates. ok is false when neither is
// set; setting only one of them is an error.
func (c *Config) Location() (lat, lon float64, ok bool, err error) {
	if c.Latitude == "" && c.Longitude == "" {
		return 0, 0, false, nil
	}
	if c.Latitude == "" || c.Longitude == "" {
		return 0, 0, false, fmt.Errorf("BIRD_LATITUDE and BIRD_LONGITUDE must be set together")
	}
	lat, err = strconv.ParseFloat(c.Latitude, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid BIRD_LATITUDE: %w", err)
	}
	lon, err = strconv.ParseFloat(c.Longitude, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid BIRD_LONGITUDE: %w", err)
	}
	return lat, lon, true, nil
}

// MarshalZerologObject logs the config without secrets.
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("auth_url", c.AuthURL).
		Str("api_url", c.APIURL).
		Dur("timeout", c.Timeout).
		Bool("access_token_present", c.AccessToken != "").
		Bool("device_id_present", c.DeviceID != "").
		Str("latitude", c.Latitude).
		Str("longitude", c.Longitude).
		Str("log_level", c.LogLevel).
		Bool("debug", c.Debug)
}
