package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email has an invalid format")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrEmptyID          = errors.New("id is required")
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrNoFieldsToPatch  = errors.New("at least one field must be provided for update")
)
