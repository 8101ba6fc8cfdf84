package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	const plaintext = "Strong123!"

	hash, err := HashPassword(plaintext)
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, plaintext, hash)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	const plaintext = "Strong123!"

	first, err := HashPassword(plaintext)
	require.NoError(t, err)

	second, err := HashPassword(plaintext)
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, plaintext))
	assert.True(t, CheckPassword(second, plaintext))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("Strong123!")
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "Wrong456!"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "Strong123!"))
}
