package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"jan@example.com","password":"hunter22!"}`))

	body, err := ExtractAndValidateBody[loginBody](r)
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", body.Email)
}

func TestExtractAndValidateBodyValidationErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":"short"}`))

	_, err := ExtractAndValidateBody[loginBody](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, "email", ve.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", ve.Errors[0].Message)
	assert.Equal(t, "password", ve.Errors[1].Field)
	assert.Equal(t, "must be at least 8 characters", ve.Errors[1].Message)
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"jan@example.com","password":"hunter22!","admin":true}`))

	_, err := ExtractAndValidateBody[loginBody](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":`))

	_, err := ExtractAndValidateBody[loginBody](r)
	assert.Error(t, err)
}
