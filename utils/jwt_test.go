package utils

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// Mirrors the startup ordering: the environment is populated (in the app,
// by godotenv) before the first token is issued.
func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "canteen-test-secret")
	os.Exit(m.Run())
}

func TestGenerateTokenSignsWithConfiguredSecret(t *testing.T) {
	token, err := GenerateToken(7, "student")
	assert.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &CustomClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("canteen-test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*CustomClaims)
	assert.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestParseTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(3, "staff")
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &CustomClaims{UserID: 3, Role: "staff"})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}
