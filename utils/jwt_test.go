package utils

import (
	"FrameVault/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setJWTConfig(t *testing.T) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig.SecretKey = "test-secret"
	config.AppConfig.Algorithm = "HS256"
	t.Cleanup(func() { config.AppConfig = old })
}

// TestGenerateAndVerifyToken tests the token round trip.
func TestGenerateAndVerifyToken(t *testing.T) {
	setJWTConfig(t)

	token, err := GenerateToken("alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
}

// TestVerifyTokenExpired verifies expiry is enforced even though the
// signature is valid.
func TestVerifyTokenExpired(t *testing.T) {
	setJWTConfig(t)

	token, err := GenerateToken("alice", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	require.Error(t, err)
}

// TestVerifyTokenWrongSecret verifies a token signed with another secret
// is rejected.
func TestVerifyTokenWrongSecret(t *testing.T) {
	setJWTConfig(t)

	token, err := GenerateToken("alice", time.Minute)
	require.NoError(t, err)

	config.AppConfig.SecretKey = "other-secret"
	_, err = VerifyToken(token)
	require.Error(t, err)
}

// TestVerifyTokenWrongAlgorithm verifies tokens must use the configured
// signing method.
func TestVerifyTokenWrongAlgorithm(t *testing.T) {
	setJWTConfig(t)

	token, err := GenerateToken("alice", time.Minute)
	require.NoError(t, err)

	config.AppConfig.Algorithm = "HS512"
	_, err = VerifyToken(token)
	require.Error(t, err)
}

// TestVerifyTokenGarbage tests malformed input.
func TestVerifyTokenGarbage(t *testing.T) {
	setJWTConfig(t)

	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Fatal("VerifyToken should fail on garbage input")
	}
}

// TestGenerateTokenUnknownAlgorithm tests config validation.
func TestGenerateTokenUnknownAlgorithm(t *testing.T) {
	setJWTConfig(t)
	config.AppConfig.Algorithm = "NOPE"

	if _, err := GenerateToken("alice", time.Minute); err == nil {
		t.Fatal("GenerateToken should fail for an unknown algorithm")
	}
}
