package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword(hash, "hunter22"))
	assert.False(t, VerifyPassword(hash, "hunter23"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default instead of erroring
	hash, err := HashPassword("hunter22", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestGenerateRandomTokenUnique(t *testing.T) {
	a, err := GenerateRandomToken()
	require.NoError(t, err)
	b, err := GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	// 32 bytes base64url encoded
	assert.Len(t, a, 44)
}
