package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/store"
	"github.com/semenovp/go-user-hub/internal/utils"
	"github.com/semenovp/go-user-hub/models"
)

// userService is the concrete implementation of [UserService]. It owns the
// password-hashing boundary: every password entering this service leaves it
// only as a bcrypt hash.
type userService struct {
	// userRepository is the data-access layer used to persist and look up
	// users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given
// [store.UserRepository].
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create registers a new user account.
//
// The plaintext password is hashed with bcrypt before the repository is
// called; the plaintext never reaches the persistence layer.
//
// Returns the persisted user (including the hash) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrDuplicateKey, untranslated, if the email is already taken.
func (s *userService) Create(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Email == "" || input.Password == "" {
		log.Error().Str("email", input.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Update applies a partial update to an existing user.
//
// A password in the patch is re-hashed before persistence; an email
// overwrites directly. Fields absent from the input are left untouched.
func (s *userService) Update(ctx context.Context, input models.UpdateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.ID == "" {
		log.Error().Msg("invalid user data provided: missing id")
		return models.User{}, ErrInvalidDataProvided
	}

	patch := map[string]any{}
	if input.Email != nil {
		patch["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		patch["password"] = hash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, input.ID, patch)
	if err != nil {
		log.Err(err).Str("id", input.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Get returns a single user by identifier.
func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("invalid user data provided: missing id")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// Remove deletes a user by identifier, returning the pre-deletion state or
// (nil, nil) when nothing matched.
func (s *userService) Remove(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("invalid user data provided: missing id")
		return nil, ErrInvalidDataProvided
	}

	removedUser, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user removal ended with error")
		return nil, fmt.Errorf("user removal ended with error: %w", err)
	}

	return removedUser, nil
}

// VerifyUser authenticates a user by email and plaintext password.
//
// Both failure paths — unknown email and hash mismatch — return the same
// [ErrAuthenticationRejected] with no distinguishing detail, so that the
// login endpoint cannot be used to enumerate registered emails. The
// diagnostic detail is confined to server-side logs.
func (s *userService) VerifyUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("email", email).Msg("authentication rejected: unknown email")
			return models.User{}, ErrAuthenticationRejected
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Warn().Str("email", email).Msg("authentication rejected: wrong password")
		return models.User{}, ErrAuthenticationRejected
	}

	return foundUser, nil
}
