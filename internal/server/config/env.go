package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads a dotenv file (-env flag, else ./.env when present) into the
// process environment and copies recognized variables into config. Variables
// already set in the environment win over the file.
//
// Recognized variables:
//
//	PORT, MONGODB_URI, DATABASE_DSN, DATABASE_NAME, TRANSLATE_API_URL,
//	TRANSLATE_API_KEY, TRANSLATE_TIMEOUT, STORE_TIMEOUT, BCRYPT_COST,
//	LOG_LEVEL, CORS_ORIGINS
func parseEnv(config *Config, args []string) error {
	envFile := flagx.EnvFileFlag(args)
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddr = ":" + v
	}
	if v, ok := os.LookupEnv("MONGODB_URI"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("DATABASE_NAME"); ok && v != "" {
		config.DatabaseName = v
	}
	if v, ok := os.LookupEnv("TRANSLATE_API_URL"); ok && v != "" {
		config.TranslateAPIURL = v
	}
	if v, ok := os.LookupEnv("TRANSLATE_API_KEY"); ok {
		config.TranslateAPIKey = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok && v != "" {
		config.AllowedOrigins = splitList(v)
	}

	var err error
	if config.TranslateTimeout, err = envDuration("TRANSLATE_TIMEOUT", config.TranslateTimeout); err != nil {
		return err
	}
	if config.StoreTimeout, err = envDuration("STORE_TIMEOUT", config.StoreTimeout); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok && v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		config.BcryptCost = cost
	}

	return nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
