package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	require.True(t, VerifyPassword("admin123", hash))
	require.False(t, VerifyPassword("wrong", hash))
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, VerifyPassword("same-password", h1))
	require.True(t, VerifyPassword("same-password", h2))
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}
