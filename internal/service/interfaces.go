package service

import (
	"context"
	"net/http"

	"github.com/semenovp/go-user-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService is the business-logic contract for user accounts. Its single
// enforced rule: no plaintext password is ever persisted or compared
// directly.
type UserService interface {
	// Create registers a new user. The input password is hashed before
	// persistence. The returned user includes the stored hash; API-boundary
	// callers are responsible for excluding it from external
	// representations.
	Create(ctx context.Context, input models.CreateUserInput) (models.User, error)

	// Update applies a partial update to the user with the given
	// identifier. When the patch contains a password it is re-hashed before
	// persistence; other fields overwrite directly.
	Update(ctx context.Context, input models.UpdateUserInput) (models.User, error)

	// Get returns the user with the given identifier, or a not-found error.
	Get(ctx context.Context, id string) (models.User, error)

	// List returns all users, possibly an empty list.
	List(ctx context.Context) ([]models.User, error)

	// Remove deletes the user with the given identifier and returns the
	// pre-deletion state, or (nil, nil) when nothing matched.
	Remove(ctx context.Context, id string) (*models.User, error)

	// VerifyUser checks the supplied credentials against the stored hash.
	// An unknown email and a wrong password both fail with the same
	// [ErrAuthenticationRejected] so that callers cannot distinguish the
	// two causes.
	VerifyUser(ctx context.Context, email, password string) (models.User, error)
}

// AuthService issues and validates session credentials. Sessions are not
// persisted server-side; a token is valid until its encoded expiry elapses.
type AuthService interface {
	// IssueSession creates a signed session token for the verified user
	// and the HTTP-only cookie carrying it. The cookie's Expires attribute
	// matches the token's encoded expiry.
	IssueSession(ctx context.Context, user models.User) (models.SessionToken, *http.Cookie, error)

	// ParseSession validates a raw session token string and returns the
	// principal encoded in it. Any validation failure (bad signature,
	// expired, malformed) is normalised to [ErrSessionInvalid].
	ParseSession(ctx context.Context, tokenString string) (models.Principal, error)
}
