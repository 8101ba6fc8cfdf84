package validators

import (
	"context"
	"errors"
	"regexp"
	"unicode"

	"github.com/semenovp/go-user-hub/models"
)

// emailPattern is a pragmatic email shape check: one local part, one "@",
// one domain with a dot. Full RFC 5322 parsing is out of scope.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

// UserValidator validates account inputs before they reach the service
// layer. All violated constraints are reported together via errors.Join.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateUserInput:
		return v.validateCreateInput(value)
	case *models.CreateUserInput:
		return v.validateCreateInput(*value)

	case models.UpdateUserInput:
		return v.validateUpdateInput(value)
	case *models.UpdateUserInput:
		return v.validateUpdateInput(*value)

	case models.LoginRequest:
		return v.validateLoginRequest(value)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreateInput(input models.CreateUserInput) error {
	var errs []error

	errs = append(errs, checkEmail(input.Email))
	errs = append(errs, checkPassword(input.Password))

	return errors.Join(errs...)
}

func (v *UserValidator) validateUpdateInput(input models.UpdateUserInput) error {
	var errs []error

	if input.ID == "" {
		errs = append(errs, ErrEmptyID)
	}

	if input.Email == nil && input.Password == nil {
		errs = append(errs, ErrNoFieldsToPatch)
	}

	if input.Email != nil {
		errs = append(errs, checkEmail(*input.Email))
	}

	if input.Password != nil {
		errs = append(errs, checkPassword(*input.Password))
	}

	return errors.Join(errs...)
}

func (v *UserValidator) validateLoginRequest(req models.LoginRequest) error {
	// login inputs are only checked for presence: shape errors must not
	// leak which part of a credential pair was malformed
	if req.Email == "" || req.Password == "" {
		return ErrEmptyCredentials
	}

	return nil
}

func checkEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return ErrPasswordTooWeak
	}

	return nil
}
