package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/wordbridge/internal/flagx"
	"github.com/dmitrijs2005/wordbridge/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// both "10s" strings and integer nanoseconds (see timex.Duration).
type JsonConfig struct {
	EndpointAddr     string         `json:"endpoint_addr"`
	DatabaseDSN      string         `json:"database_dsn"`
	DatabaseName     string         `json:"database_name"`
	TranslateAPIURL  string         `json:"translate_api_url"`
	TranslateAPIKey  string         `json:"translate_api_key"`
	TranslateTimeout timex.Duration `json:"translate_timeout"`
	StoreTimeout     timex.Duration `json:"store_timeout"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	BcryptCost       int            `json:"bcrypt_cost"`
	AllowedOrigins   []string       `json:"allowed_origins"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config. Fields
// missing from the file (zero values) leave config untouched. No flag, no-op.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var c JsonConfig
	if err := json.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.TranslateAPIURL, c.TranslateAPIURL)
	setString(&config.TranslateAPIKey, c.TranslateAPIKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.TranslateTimeout.Duration > 0 {
		config.TranslateTimeout = c.TranslateTimeout.Duration
	}
	if c.StoreTimeout.Duration > 0 {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
