package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted bcrypt hash of the given plaintext password.
//
// bcrypt embeds a fresh random salt into every hash, so hashing the same
// plaintext twice yields different values. The default cost is used: high
// enough to be deliberately slow for an attacker, low enough not to stall
// request handling.
//
// Returns the hash in bcrypt's standard string encoding, or an error if the
// plaintext exceeds bcrypt's length limit.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt hash.
//
// The comparison recomputes the hash with the salt and cost encoded in the
// stored value and compares in constant time; no plaintext is ever stored or
// returned.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
