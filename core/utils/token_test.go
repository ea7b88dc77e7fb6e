package utils

import (
	"testing"

	"romantic-api/core/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, sessionMinutes int) {
	t.Helper()
	config.Set(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      secret,
			SessionMinutes: sessionMinutes,
		},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t, "test-secret", 240)

	userID := uuid.New()
	token, err := GenerateToken(userID, "amor@mimujer.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, data.UserID)
	assert.Equal(t, "amor@mimujer.local", data.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "test-secret", 240)
	token, err := GenerateToken(uuid.New(), "amor@mimujer.local")
	require.NoError(t, err)

	setTestConfig(t, "another-secret", 240)
	_, err = ValidateAndParseToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	setTestConfig(t, "test-secret", -10)
	token, err := GenerateToken(uuid.New(), "amor@mimujer.local")
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	setTestConfig(t, "test-secret", 240)

	_, err := ValidateAndParseToken("not-a-token")
	assert.Error(t, err)
}
