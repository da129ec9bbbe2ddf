package lib

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID int64, email string, expiresIn time.Duration, secret string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	tokenStr := signToken(t, 42, "jan@example.com", 15*time.Minute, testSecret)

	claims, err := ParseToken(tokenStr, testSecret)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.Sub)
	assert.Equal(t, "jan@example.com", claims.Email)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.True(t, claims.Exp.After(time.Now()))
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenStr := signToken(t, 42, "jan@example.com", 15*time.Minute, testSecret)

	_, err := ParseToken(tokenStr, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tokenStr := signToken(t, 42, "jan@example.com", -time.Minute, testSecret)

	_, err := ParseToken(tokenStr, testSecret)
	assert.Error(t, err)
}

func TestParseExpiredTokenAllowsExpired(t *testing.T) {
	tokenStr := signToken(t, 7, "piet@example.com", -time.Hour, testSecret)

	claims, err := ParseExpiredToken(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.Sub)
	assert.Equal(t, "piet@example.com", claims.Email)
}

func TestParseExpiredTokenStillChecksSignature(t *testing.T) {
	tokenStr := signToken(t, 7, "piet@example.com", -time.Hour, testSecret)

	_, err := ParseExpiredToken(tokenStr, "other-secret")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := BearerToken(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractClaims(t *testing.T) {
	tokenStr := signToken(t, 99, "kim@example.com", time.Minute, testSecret)

	r := httptest.NewRequest("GET", "/api/auth/profile", nil)
	r.Header.Set("Authorization", "Bearer "+tokenStr)

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(99), claims.Sub)
}
