package auth

import (
	"merchshop_server/api/middleware"
	"merchshop_server/services"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// Public routes
		r.Post("/register", arm.HandleRegister)
		r.Post("/login", arm.HandleLogin)
		r.Post("/refresh", arm.HandleRefresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware())
			r.Get("/profile", arm.HandleProfile)
		})
	})
}
