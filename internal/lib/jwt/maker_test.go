package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseAccessToken_ValidCases(t *testing.T) {
	accessTTL := 15 * time.Minute
	maker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", accessTTL, 168*time.Hour)

	tests := []struct {
		name   string
		userID int
		email  string
		role   string
	}{
		{
			name:   "admin user",
			userID: 1,
			email:  "admin@example.com",
			role:   "admin",
		},
		{
			name:   "regular user",
			userID: 42,
			email:  "user@example.com",
			role:   "user",
		},
		{
			name:   "large user id",
			userID: 1000000,
			email:  "big@example.com",
			role:   "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateAccessToken(tt.userID, tt.email, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseAccessToken(token)
			require.NoError(t, err)

			userID, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, tt.userID, userID)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(accessTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_AccessAndRefreshSecretsAreIndependent(t *testing.T) {
	maker := NewMaker("access_secret", "refresh_secret", 15*time.Minute, 168*time.Hour)

	accessToken, err := maker.GenerateAccessToken(1, "user@example.com", "user")
	require.NoError(t, err)
	refreshToken, err := maker.GenerateRefreshToken(1, "user@example.com", "user")
	require.NoError(t, err)

	// Access-токен не проходит проверку refresh-секретом и наоборот.
	claims, err := maker.ParseRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker.ParseAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker.ParseRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestMaker_ParseAccessToken_InvalidTokens(t *testing.T) {
	maker := NewMaker("access_secret", "refresh_secret", 15*time.Minute, 168*time.Hour)

	validToken, err := maker.GenerateAccessToken(1, "user@example.com", "user")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredAccessToken(t),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestCustomClaims_UserID_InvalidSubject(t *testing.T) {
	claims := &CustomClaims{}
	claims.Subject = "not-a-number"

	_, err := claims.UserID()
	assert.Error(t, err)
}

func createExpiredAccessToken(t *testing.T) string {
	maker := NewMaker("access_secret", "refresh_secret", -time.Hour, 168*time.Hour)
	token, err := maker.GenerateAccessToken(1, "user@example.com", "user")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key", "refresh_secret", 15*time.Minute, 168*time.Hour)
	token, err := wrongMaker.GenerateAccessToken(1, "user@example.com", "user")
	require.NoError(t, err)
	return token
}
