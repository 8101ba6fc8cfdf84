// Package app contains shared application-layer constants used across the
// go-user-hub server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON at all.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidEmailPassword is returned when a login attempt is rejected.
	// The same message covers an unknown email, a wrong password, and a
	// structurally incomplete request, so the response never reveals which
	// part of the credential pair failed.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
