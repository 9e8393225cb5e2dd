package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	userId := uuid.New()

	token, err := CreateToken(userId)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userId.String(), claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("wandering-soul-9")
	require.NoError(t, err)
	assert.NotEqual(t, "wandering-soul-9", hash)

	assert.NoError(t, ComparePasswords(hash, "wandering-soul-9"))
	assert.Error(t, ComparePasswords(hash, "wrong-password"))
}
