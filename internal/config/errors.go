package config

import "errors"

// Sentinel errors returned by configuration validation. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidStorageConfigs is returned when no database DSN was
	// provided by any configuration source.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAuthConfigs is returned when token signing parameters are
	// missing or the token lifetime is not positive.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs: sign key, algorithm and positive TTL are required")

	// ErrInvalidServerConfigs is returned when no HTTP listen address was
	// provided by any configuration source.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")
)
