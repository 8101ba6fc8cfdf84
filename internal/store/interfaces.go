package store

import (
	"context"

	"github.com/semenovp/go-user-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts consumed by
// the service layer.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored representation
	// with the server-assigned identifier and creation time.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// [ErrNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindAllUsers returns every stored user, possibly an empty list.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial field patch to the user with the given
	// identifier and returns the post-update state, or [ErrNotFound].
	UpdateUser(ctx context.Context, id string, patch map[string]any) (models.User, error)

	// DeleteUser removes the user with the given identifier and returns
	// the pre-deletion state, or (nil, nil) when no user matched.
	DeleteUser(ctx context.Context, id string) (*models.User, error)
}
