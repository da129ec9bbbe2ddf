package middleware

import (
	"merchshop_server/services"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

// Middleware bundles the dependencies shared by all HTTP middleware.
type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		cacheService: cacheService,
	}
}
