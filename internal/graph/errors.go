package graph

import "errors"

var (
	// ErrUnauthenticated is returned by protected resolvers when the
	// execution context carries no principal.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUserNotFound is the client-facing form of a repository miss.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput is returned when a resolver argument cannot be
	// decoded into its input type.
	ErrInvalidInput = errors.New("invalid input")
)
