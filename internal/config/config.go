// Package config loads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the settings shared by every CLI command.
type Config struct {
	LogLevel string `env:"TRANSITIONS_LOG_LEVEL" envDefault:"info"`

	// LogFormat is text, json or console.
	LogFormat string `env:"TRANSITIONS_LOG_FORMAT" envDefault:"text"`

	// File is the definition loaded when --file is not given.
	File string `env:"TRANSITIONS_FILE"`

	// MaxAlphabet caps the state alphabet size accepted by exhaustive path queries.
	MaxAlphabet int `env:"TRANSITIONS_MAX_ALPHABET" envDefault:"16"`

	MetricsNamespace string `env:"TRANSITIONS_METRICS_NAMESPACE" envDefault:"transitions"`
}

// Load reads the given .env files, or ./.env when none are given, and then
// parses the environment. A missing default .env is not an error; variables
// already set in the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	if cfg.MaxAlphabet <= 0 {
		return nil, fmt.Errorf("%w: TRANSITIONS_MAX_ALPHABET must be positive, got %d", ErrInvalidConfig, cfg.MaxAlphabet)
	}
	return &cfg, nil
}
