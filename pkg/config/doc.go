// Package config loads the whoami tool configuration from environment
// variables prefixed with WHOAMI_.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are loaded into the process environment first, then the
// environment is parsed into Config using field tags.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // errors.Is(err, config.ErrParsingConfig), config.ErrInvalidOutput, …
//	}
//	src := cfg.Source() // browser.Static built from WHOAMI_USER_AGENT, WHOAMI_DOMAIN, WHOAMI_LANGUAGES
//
// # Variables
//
//	WHOAMI_ENV          development | production (default development)
//	WHOAMI_SERVICE      service attribute on log records (default whoami)
//	WHOAMI_LOG_LEVEL    debug | info | warn | error (default info)
//	WHOAMI_LOG_FORMAT   text | json (default depends on WHOAMI_ENV)
//	WHOAMI_OUTPUT       text | json | yaml (default text)
//	WHOAMI_USER_AGENT   user agent to analyse; unset or empty means absent
//	WHOAMI_DOMAIN       page hostname; unset or empty means absent
//	WHOAMI_LANGUAGES    comma-separated declared languages
package config
