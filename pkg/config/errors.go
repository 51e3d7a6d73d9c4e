package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidOutput is returned for an unknown output format
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidLogFormat is returned for an unknown log format
	ErrInvalidLogFormat = errors.New("invalid log format")
)
