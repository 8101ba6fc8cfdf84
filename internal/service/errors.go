package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required input fields are
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationRejected is the single generic failure for both an
	// unknown email and a wrong password. The symmetry is deliberate: the
	// message must never reveal whether the email exists.
	ErrAuthenticationRejected = errors.New("invalid email or password")

	// ErrSessionInvalid is returned for any session token validation
	// failure so that callers do not need to inspect low-level JWT errors.
	ErrSessionInvalid = errors.New("session token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session token
	// fails.
	ErrTokenCreationFailed = errors.New("session token creation failed")

	// ErrPasswordHashingFailed is returned when computing the password
	// hash fails.
	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
