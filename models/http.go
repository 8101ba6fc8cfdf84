package models

// LoginRequest is the request body accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserInput is the payload of the createUser mutation.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput is the payload of the updateUser mutation. Nil fields are
// left untouched; a non-nil password is re-hashed before persistence.
type UpdateUserInput struct {
	ID       string  `json:"id"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
