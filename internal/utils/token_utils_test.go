package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", testSecret, time.Hour, "bca-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "bca-test", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", testSecret, -time.Minute, "bca-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateJWT("user-1", testSecret, time.Hour, "bca-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "some-other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
