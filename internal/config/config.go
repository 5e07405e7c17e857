// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvURI       = "MONGODB_URI"
	EnvLegacyURI = "MongoDBAtlas_URI"
	EnvLogLevel  = "BOOKSTORE_LOG_LEVEL"
	EnvOutput    = "BOOKSTORE_OUTPUT"
	EnvTimeout   = "BOOKSTORE_TIMEOUT"
)

const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds the settings shared by every command.
type Config struct {
	URI      string
	LogLevel string
	Output   string
	// Timeout bounds a whole command. Zero means no bound beyond the
	// driver's own defaults.
	Timeout time.Duration
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding variables that are already set, then builds
// a Config from the environment. Missing env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		URI:      getenv(EnvURI, os.Getenv(EnvLegacyURI)),
		LogLevel: strings.ToLower(getenv(EnvLogLevel, "info")),
		Output:   strings.ToLower(getenv(EnvOutput, OutputYAML)),
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Validate reports the first invalid setting. The URI is only checked for
// presence; the driver parses it.
func (c Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("config: connection URI is required (set %s)", EnvURI)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch c.Output {
	case OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("config: unknown output format %q (want %s or %s)", c.Output, OutputYAML, OutputJSON)
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
