// Package config handles configuration for the server component,
// including defaults, environment (.env), JSON overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the WordBridge API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: store location; the scheme picks the backend
//     (mongodb://, mongodb+srv://, postgres://, postgresql://, memory://).
//   - DatabaseName: Mongo database name (ignored by other backends).
//   - TranslateAPIURL / TranslateAPIKey: upstream translation endpoint and key.
//   - TranslateTimeout / StoreTimeout: deadlines for outbound calls.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - BcryptCost: work factor for password hashing.
//   - AllowedOrigins: CORS allow-list for the browser client.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr     string
	DatabaseDSN      string
	DatabaseName     string
	TranslateAPIURL  string
	TranslateAPIKey  string
	TranslateTimeout time.Duration
	StoreTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BcryptCost       int
	AllowedOrigins   []string
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "wordbridge"
	c.TranslateAPIURL = "https://translation.googleapis.com/language/translate/v2"
	c.TranslateAPIKey = ""
	c.TranslateTimeout = 10 * time.Second
	c.StoreTimeout = 5 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.BcryptCost = bcrypt.DefaultCost
	c.AllowedOrigins = []string{"http://localhost:5173"}
	c.LogLevel = "info"
}

// Validate reports settings that would make the server misbehave.
func (c *Config) Validate() error {
	var errs []error

	if c.EndpointAddr == "" {
		errs = append(errs, errors.New("endpoint address is empty"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is empty"))
	}
	if c.TranslateAPIURL == "" {
		errs = append(errs, errors.New("translate api url is empty"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.TranslateTimeout <= 0 || c.StoreTimeout <= 0 || c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}

	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying the
// environment (after loading a dotenv file), an optional JSON file and
// finally command-line flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
