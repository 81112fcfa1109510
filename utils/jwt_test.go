package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	userID := uuid.New()

	token, err := GenerateToken(userID, "mahasiswa")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "mahasiswa", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-a")
	token, err := GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rahasia-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(uuid.New(), "admin")
	assert.Error(t, err)
}
