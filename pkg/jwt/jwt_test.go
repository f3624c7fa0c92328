package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, true, "access", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseTokenWrongType(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 1, false, "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("a"), 1, false, "access", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("b"), "access", token)
	assert.Error(t, err)
}
