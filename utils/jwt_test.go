package utils

import (
	"testing"
	"time"

	"cabinkeep/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "staff@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

// Tokens are signed with the configured JWT_SECRET; rotating the secret
// invalidates previously issued tokens.
func TestSigningSecretComesFromConfig(t *testing.T) {
	orig := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = orig }()

	config.AppConfig.JWTSecret = "first-secret"
	token, err := GenerateToken("user-123", "staff@example.com", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractIDFromExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-123", "staff@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractIDFromGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	a, err := NewRefreshToken()
	require.NoError(t, err)
	b, err := NewRefreshToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestHashTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
