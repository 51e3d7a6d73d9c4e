package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/webwhoami/pkg/browser"
)

// Prefix is prepended to every variable name.
const Prefix = "WHOAMI_"

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the whoami tool settings.
type Config struct {
	Env       string   `env:"ENV" envDefault:"development"`
	Service   string   `env:"SERVICE" envDefault:"whoami"`
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"LOG_FORMAT"`
	Output    string   `env:"OUTPUT" envDefault:"text"`
	UserAgent string   `env:"USER_AGENT"`
	Domain    string   `env:"DOMAIN"`
	Languages []string `env:"LANGUAGES" envSeparator:","`
}

// Load reads the configuration from the environment.
//
// With no files it loads ./.env when present and ignores a missing one.
// Named files must exist. Variables already set in the environment win over
// values from files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The default .env file is optional
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// Source builds a static browser source from the configured values.
// Empty user agent and domain values are treated as absent.
func (c Config) Source() browser.Static {
	var opts []browser.Option
	if c.UserAgent != "" {
		opts = append(opts, browser.WithUserAgent(c.UserAgent))
	}
	if c.Domain != "" {
		opts = append(opts, browser.WithDomain(c.Domain))
	}
	if len(c.Languages) > 0 {
		opts = append(opts, browser.WithLanguages(c.Languages...))
	}
	return browser.NewStatic(opts...)
}
