package config

import "errors"

var (
	// ErrMissingRequiredKey is returned when a key declared required is
	// absent from the merged configuration. The wrapping error names the
	// dotted path of the first missing key.
	ErrMissingRequiredKey = errors.New("missing required configuration key")

	// ErrInvalidRequiredConfig is returned when the required configuration
	// is neither a mapping nor a string holding a valid YAML mapping.
	ErrInvalidRequiredConfig = errors.New("invalid required configuration")
)
