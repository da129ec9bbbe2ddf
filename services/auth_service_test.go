package services

import (
	"testing"

	"merchshop_server/lib"
	"merchshop_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckCredentials(t *testing.T) {
	hash, err := lib.HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	user := &tables.User{ID: 7, Email: "ada@example.com", PasswordHash: hash}

	t.Run("valid password", func(t *testing.T) {
		assert.NoError(t, CheckCredentials(user, "correct horse"))
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		errUnknown := CheckCredentials(nil, "correct horse")
		errWrongPassword := CheckCredentials(user, "battery staple")

		assert.ErrorIs(t, errUnknown, lib.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPassword, lib.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
	})
}
