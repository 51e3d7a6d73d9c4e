package useragent

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors below wrap one of them.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidData      = errors.New("invalid data")
)

var (
	// ErrDomainMissing is returned when the page location has no hostname.
	ErrDomainMissing = fmt.Errorf("%w: Domain missing", ErrNotFound)

	// ErrNoUserAgent is returned when the browser does not expose a user agent at all.
	ErrNoUserAgent = fmt.Errorf("%w: user agent unavailable", ErrPermissionDenied)

	// ErrParsingFailed is returned when the user agent lacks the platform parenthetical.
	ErrParsingFailed = fmt.Errorf("%w: Parsing failed", ErrInvalidData)
)
