package services

import (
	"merchshop_server/database"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	CacheService   *CacheService
	CartService    *CartService
	CatalogService *CatalogService
	EmailService   *EmailService
	HealthService  *HealthService
	OrderService   *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	cartService := NewCartService(logger, db)
	catalogService := NewCatalogService(logger, db, cacheService)
	healthService := NewHealthService(logger, db)
	orderService := NewOrderService(logger, cfg, db, cacheService, emailService)

	return &ServiceManager{
		AuthService:    authService,
		CacheService:   cacheService,
		CartService:    cartService,
		CatalogService: catalogService,
		EmailService:   emailService,
		HealthService:  healthService,
		OrderService:   orderService,
	}
}
