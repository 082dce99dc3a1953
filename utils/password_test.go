package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPasswordLiteral(t *testing.T) {
	assert.True(t, VerifyPassword("password", "password"))
	assert.False(t, VerifyPassword("password", "Password"))
	assert.False(t, VerifyPassword("", "password"))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hashed, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hashed)

	assert.True(t, VerifyPassword(hashed, "secret"))
	assert.False(t, VerifyPassword(hashed, "wrong"))
	// The hash itself is not a valid literal password.
	assert.False(t, VerifyPassword(hashed, hashed))
}
