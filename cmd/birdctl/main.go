package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/poh0/bird-wrapper/client"
	"github.com/poh0/bird-wrapper/internal/config"
	"github.com/poh0/bird-wrapper/internal/logger"
)

var (
	cfg      *config.Config
	authURL  string
	apiURL   string
	token    string
	deviceID string
	debug    bool
)

const callTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	loaded, cfgErr := config.New()
	if loaded == nil {
		loaded = &config.Config{}
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:           "birdctl",
		Short:         "birdctl talks to the Bird rider API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if debug {
				cfg.Debug = true
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = logger.New("birdctl", cmd.ErrOrStderr(), logger.Format(cfg.LogFormat), level)
			log.Debug().Object("config", cfg).Msg("configuration loaded")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&authURL, "auth-url", cfg.AuthURL, "Base URL of the auth service")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", cfg.APIURL, "Base URL of the rider API")
	rootCmd.PersistentFlags().StringVar(&token, "token", cfg.AccessToken, "Access token (default $BIRD_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&deviceID, "device-id", cfg.DeviceID, "Device identifier (default: random per run)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", cfg.Debug, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newAuthEmailCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newNearbyCmd())
	rootCmd.AddCommand(newDeviceIDCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}

// newClient builds a client from the resolved flags and config.
func newClient() (*client.Client, error) {
	opts := []client.Option{
		client.WithHTTPTimeout(cfg.Timeout),
		client.WithLogger(log.Logger),
		client.WithDebugLogging(debug),
	}
	if deviceID != "" {
		opts = append(opts, client.WithDeviceID(deviceID))
	}
	if token != "" {
		opts = append(opts, client.WithAccessToken(token))
	}
	c, err := client.New(client.Config{AuthBaseURL: authURL, APIBaseURL: apiURL}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	if lat, lon, ok, _ := cfg.Location(); ok {
		c.SetLocation(lat, lon)
	}
	return c, nil
}

func newAuthEmailCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "auth-email",
		Short: "Log in (or register) with an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			log.Debug().Str("email", email).Str("device_id", c.DeviceID()).Msg("authenticating by email")
			res, err := c.AuthenticateByEmail(ctx, email)
			if err != nil {
				return errors.Wrap(err, "auth-email")
			}

			out := cmd.OutOrStdout()
			if res.ValidationRequired {
				fmt.Fprintf(out, "Validation required: open the link sent to %s and run `birdctl verify --code <token>`\n", res.Email)
				return nil
			}
			tok, _ := c.Session().AccessToken()
			fmt.Fprintf(out, "Access token: %s\n", tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exchange the magic-link token from the login email for an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			raw, err := c.VerifyEmailToken(ctx, code)
			if err != nil {
				return errors.Wrap(err, "verify")
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "One-time token from the magic link (required)")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the rider profile as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			raw, err := c.FetchProfile(ctx)
			if err != nil {
				return errors.Wrap(err, "profile")
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func newNearbyCmd() *cobra.Command {
	var lat, lon float64
	var radius int
	var table bool

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List vehicles around a location",
		Long: "List vehicles around --lat/--lon, or around BIRD_LATITUDE/BIRD_LONGITUDE,\n" +
			"or around the client's default location when neither is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return errors.New("--lat and --lon must be given together")
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			start := time.Now()
			var raw json.RawMessage
			if latSet {
				raw, err = c.FetchNearbyVehiclesAt(ctx, lat, lon, radius)
			} else {
				raw, err = c.FetchNearbyVehicles(ctx, radius)
			}
			if err != nil {
				return errors.Wrap(err, "nearby")
			}
			log.Debug().Int("radius", radius).Int("bytes", len(raw)).Dur("elapsed", time.Since(start)).Msg("nearby completed")

			if !table {
				return printJSON(cmd.OutOrStdout(), raw)
			}
			vehicles, err := client.DecodeVehicles(raw)
			if err != nil {
				return errors.Wrap(err, "nearby")
			}
			printVehicles(cmd.OutOrStdout(), vehicles)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().IntVar(&radius, "radius", client.DefaultRadius, "Search radius in meters")
	cmd.Flags().BoolVar(&table, "table", false, "Print one vehicle per line instead of JSON")
	return cmd
}

func newDeviceIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "device-id",
		Short: "Print the device identifier this run would send",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			fmt.Fprintln(cmd.OutOrStdout(), c.DeviceID())
			return nil
		},
	}
}

// newDemoCmd runs login, location, nearby and profile in one session.
func newDemoCmd() *cobra.Command {
	var email string
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Log in by email, then list nearby vehicles and print the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), 3*callTimeout)
			defer cancel()
			out := cmd.OutOrStdout()

			res, err := c.AuthenticateByEmail(ctx, email)
			if err != nil {
				return errors.Wrap(err, "demo: auth")
			}
			if res.ValidationRequired {
				fmt.Fprintf(out, "Validation required for %s; run `birdctl verify` first\n", res.Email)
				return nil
			}

			c.SetLocation(lat, lon)
			raw, err := c.FetchNearbyVehicles(ctx, client.DefaultRadius)
			if err != nil {
				return errors.Wrap(err, "demo: nearby")
			}
			vehicles, err := client.DecodeVehicles(raw)
			if err != nil {
				return errors.Wrap(err, "demo: nearby")
			}
			fmt.Fprintf(out, "%d vehicles nearby\n", len(vehicles))

			profile, err := c.FetchProfile(ctx)
			if err != nil {
				return errors.Wrap(err, "demo: profile")
			}
			return printJSON(out, profile)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().Float64Var(&lat, "lat", client.DefaultLocation.Latitude, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", client.DefaultLocation.Longitude, "Longitude")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// printJSON indents raw when it is valid JSON and prints it verbatim otherwise.
func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func printVehicles(w io.Writer, vehicles []client.Vehicle) {
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%.6f,%.6f\tbattery=%.0f%%\n",
			v.ID, v.Location.Latitude.Float64(), v.Location.Longitude.Float64(), v.BatteryLevel.Float64())
	}
}
