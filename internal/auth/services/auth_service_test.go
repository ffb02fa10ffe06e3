package services

import (
	"testing"
	"time"

	"go-armada/internal/auth/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(secret string) *AuthService {
	return &AuthService{jwtSecret: []byte(secret)}
}

func TestJWTRoundTrip(t *testing.T) {
	service := testAuthService("test-secret")
	user := &models.User{UserID: "user-1", Email: "pilot@example.com"}

	token, expiresAt, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	authenticated, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", authenticated.UserID)
	assert.Equal(t, "pilot@example.com", authenticated.Email)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := testAuthService("secret-a").GenerateJWT(&models.User{UserID: "user-1"})
	require.NoError(t, err)

	_, err = testAuthService("secret-b").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := testAuthService("test-secret").ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	service := testAuthService("test-secret")

	claims := jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"iss":     "go-armada",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.jwtSecret)
	require.NoError(t, err)

	_, err = service.ValidateJWT(signed)
	assert.Error(t, err)
}

func TestValidateJWTRequiresUserIdentity(t *testing.T) {
	service := testAuthService("test-secret")

	claims := jwt.MapClaims{
		"email": "pilot@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.jwtSecret)
	require.NoError(t, err)

	_, err = service.ValidateJWT(signed)
	assert.Error(t, err)
}
