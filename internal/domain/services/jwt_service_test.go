package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/config"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	jwtService := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	user := &models.User{ID: 7, Username: "demo_user", UserType: models.UserTypeAdmin}
	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "demo_user", claims.Username)
	assert.Equal(t, models.UserTypeAdmin, claims.UserType)
	assert.Equal(t, "meditrack-http-service", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecretKey: "secret-a"})
	verifier := NewJWTService(&config.Config{JWTSecretKey: "secret-b"})

	token, err := issuer.GenerateToken(&models.User{ID: 1, Username: "demo_user"})
	require.NoError(t, err)

	_, err = verifier.ExtractClaims(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	jwtService := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	_, err := jwtService.ExtractClaims("not-a-token")
	assert.Error(t, err)
}
