package config

import "errors"

var (
	// ErrMissingDatabaseDSN is returned when no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey is returned when no token signing key was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidTokenDuration is returned when the token lifetime is absent
	// or not a positive number of seconds.
	ErrInvalidTokenDuration = errors.New("token duration must be a positive number of seconds")

	// ErrMissingServerAddress is returned when no HTTP listen address was
	// provided by any configuration source.
	ErrMissingServerAddress = errors.New("server address is required")
)
