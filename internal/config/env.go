package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvBaseURL   = "ROSTERSCAN_BASE_URL"
	EnvTimeout   = "ROSTERSCAN_TIMEOUT"
	EnvUserAgent = "ROSTERSCAN_USER_AGENT"
	EnvProxy     = "ROSTERSCAN_PROXY"
	EnvVerifyTLS = "ROSTERSCAN_VERIFY_TLS"
)

// DefaultDotEnvFile is the .env file read from the working directory.
const DefaultDotEnvFile = ".env"

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc that consults the process environment first
// and then the entries of the .env file at path. A missing file is not an error.
func EnvLookup(path string) (LookupFunc, error) {
	if path == "" {
		return os.LookupEnv, nil
	}

	entries, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.LookupEnv, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := entries[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides cfg with the ROSTERSCAN_* variables resolved by lookup.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		cfg.UserAgent = v
	}
	if v, ok := lookup(EnvProxy); ok && v != "" {
		cfg.ProxyAddress = v
	}
	if v, ok := lookup(EnvVerifyTLS); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerifyTLS, v, err)
		}
		cfg.VerifyTLS = b
	}
	return nil
}
