package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"merchshop_server/api/middleware"
	"merchshop_server/services"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func testRoutesManager() *AuthRoutesManager {
	cfg := &structs.Config{
		Auth: &structs.AuthConfig{AccessTokenSecret: "register-test-secret"},
	}
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	authService := services.NewAuthService(cfg, logger, nil, nil)
	return NewAuthRoutesManager(logger, authService, cfg, middleware.NewMiddleware(cfg, logger, nil))
}

func TestHandleRegisterRejectsInvalidBody(t *testing.T) {
	arm := testRoutesManager()

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader("{"))
		w := httptest.NewRecorder()

		arm.HandleRegister(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		body := `{"email": "jan@example.com"}`
		r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		arm.HandleRegister(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "registration information")
	})
}
