package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/notifykit/pkg/environment"
)

// Prefix is prepended to every environment variable name.
const Prefix = "NOTIFY_"

// DefaultMessage is the message broadcast when none is configured.
const DefaultMessage = "Nueva actualización disponible en la app"

// Config holds the demo program settings. The zero environment reproduces
// the fixed demo: email channel, the built-in roster and DefaultMessage.
type Config struct {
	Env     environment.Environment `env:"ENV" envDefault:"development"`
	Service string                  `env:"SERVICE" envDefault:"notifydemo"`

	// LogLevel and LogFormat override the environment defaults when set.
	// Load lowercases LogFormat.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// Channel is the kind assigned to roster entries without their own.
	Channel string `env:"CHANNEL" envDefault:"email"`
	// Message falls back to DefaultMessage when empty.
	Message string `env:"MESSAGE"`

	// RosterPath points to a YAML roster. Empty means the built-in roster.
	RosterPath string `env:"ROSTER"`

	level    slog.Level
	hasLevel bool
}

// Load reads the given .env files, or the default .env when none are given,
// and parses NOTIFY_* variables into a Config.
// A missing default .env is fine; a missing explicit file is an error.
// Variables already present in the process environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(envFiles ...string) Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Level returns the log level override parsed by Load, if any.
func (c Config) Level() (slog.Level, bool) {
	return c.level, c.hasLevel
}

func (c *Config) normalize() error {
	if raw := strings.TrimSpace(c.LogLevel); raw != "" {
		if err := c.level.UnmarshalText([]byte(raw)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
		}
		c.hasLevel = true
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	if c.Message == "" {
		c.Message = DefaultMessage
	}
	return nil
}
