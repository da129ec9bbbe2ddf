package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func testMiddleware() *Middleware {
	cfg := &structs.Config{
		Auth: &structs.AuthConfig{AccessTokenSecret: testSecret},
	}
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	return NewMiddleware(cfg, logger, nil)
}

func signTestToken(t *testing.T, userID int64, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": "jan@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
		"jti":   uuid.New().String(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestUserAuthMiddlewarePassesClaims(t *testing.T) {
	mw := testMiddleware()

	var got *structs.AuthClaims
	handler := mw.UserAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/api/cart", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, 42, time.Minute))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.Sub)
}

func TestUserAuthMiddlewareRejectsMissingToken(t *testing.T) {
	mw := testMiddleware()

	handler := mw.UserAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest("GET", "/api/cart", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	mw := testMiddleware()

	handler := mw.UserAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest("GET", "/api/cart", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, 42, -time.Minute))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetClaimsFromContextWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, GetClaimsFromContext(r.Context()))
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/products/:id", normalizeEndpoint("/api/products/123"))
	assert.Equal(t, "/api/orders/:id", normalizeEndpoint("/api/orders/9"))
	assert.Equal(t, "/api/cart/remove/:id", normalizeEndpoint("/api/cart/remove/5"))
	assert.Equal(t, "/api/products", normalizeEndpoint("/api/products/"))
	assert.Equal(t, "/api/cart", normalizeEndpoint("/api/cart"))
}
