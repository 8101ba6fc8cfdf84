package models

import "time"

// User represents an account entity used for authentication and authorization.
// It is both the persisted document shape and the internal record passed
// between layers. Sensitive fields must never be exposed outside trusted
// boundaries: the API surface maps User through [User.Public] before any
// external serialization.
type User struct {
	// ID is the unique identifier of the user. It is generated by the
	// store on creation; callers must never synthesize one.
	ID string `json:"id,omitempty"`

	// Email is the unique login identifier of the account.
	Email string `json:"email,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is part of the
	// persisted document but is excluded from every public representation.
	PasswordHash string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// PublicUser is the API-exposure mapping of [User]: the allow-listed set of
// fields that may cross the external boundary. There is deliberately no
// password field on this type.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the external representation of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// GetID returns the user's identifier; empty until the store assigns one.
func (u User) GetID() string {
	return u.ID
}

// CollectionName returns the name of the document collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
