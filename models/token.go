package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat, iss) and adds the account email as a private claim so that request
// authentication does not need a database round-trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the account email of the token's subject.
	Email string `json:"email,omitempty"`
}

// SessionToken wraps a signed JWT session credential together with its
// decoded claims and the expiry the cookie must mirror.
type SessionToken struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature), ready to be carried
	// as a cookie value.
	SignedString string `json:"-"`

	// Claims is the claim set encoded in the token.
	Claims SessionClaims `json:"-"`

	// ExpiresAt is the token expiry. The session cookie's Expires
	// attribute must match this value.
	ExpiresAt time.Time `json:"-"`
}

// Principal is the authenticated identity attached to a request after a
// session token has been validated. It is the only identity representation
// downstream handlers and resolvers may rely on.
type Principal struct {
	// UserID is the identifier extracted from the token's "sub" claim.
	UserID string `json:"id"`

	// Email is the account email extracted from the token's email claim.
	Email string `json:"email"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
