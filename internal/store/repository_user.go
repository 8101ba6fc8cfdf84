package store

import (
	"context"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/models"
)

// userRepository is the users-collection specialization of [Repository]. It
// composes the generic CRUD operations (no inheritance) and exposes them
// through the entity-specific [UserRepository] contract.
type userRepository struct {
	repo   *Repository[models.User]
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// document store and logger.
func NewUserRepository(store *DocumentStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		repo:   NewRepository[models.User](store, logger),
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - pre-set identifier → [ErrIdentifierProvided].
//   - duplicate email (unique_violation) → [ErrDuplicateKey], propagated
//     without further translation.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.repo.Create(ctx, user)
}

// FindUserByID retrieves the user with the given identifier, or
// [ErrNotFound] if no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.repo.FindOne(ctx, Filter{"id": id})
}

// FindUserByEmail retrieves the user whose email matches, or [ErrNotFound]
// if no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.repo.FindOne(ctx, Filter{"email": email})
}

// FindAllUsers returns every stored user in identifier order.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return r.repo.Find(ctx, nil)
}

// UpdateUser applies a partial field patch to the user with the given
// identifier and returns the post-update state, or [ErrNotFound] when no
// user matched.
func (r *userRepository) UpdateUser(ctx context.Context, id string, patch map[string]any) (models.User, error) {
	return r.repo.FindOneAndUpdate(ctx, Filter{"id": id}, patch)
}

// DeleteUser removes the user with the given identifier and returns the
// pre-deletion state. When no user matched, it returns (nil, nil) rather
// than an error; this mirrors [Repository.FindOneAndDelete].
func (r *userRepository) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return r.repo.FindOneAndDelete(ctx, Filter{"id": id})
}
