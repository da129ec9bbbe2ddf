package api

import (
	"merchshop_server/api/auth"
	"merchshop_server/api/cart"
	"merchshop_server/api/debug"
	"merchshop_server/api/health"
	"merchshop_server/api/middleware"
	"merchshop_server/api/orders"
	"merchshop_server/api/products"
	"merchshop_server/services"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes    *auth.AuthRoutesManager
	cartRoutes    *cart.CartRoutesManager
	productRoutes *products.ProductRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		cartRoutes:    cart.NewCartRoutesManager(logger, sm.CartService, mw),
		productRoutes: products.NewProductRoutesManager(logger, sm.CatalogService, mw),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(sm.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	// Health and metrics stay at the root, everything else under /api
	rm.healthRoutes.RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		rm.authRoutes.RegisterRoutes(r)
		rm.cartRoutes.RegisterRoutes(r)
		rm.productRoutes.RegisterRoutes(r)
		rm.orderRoutes.RegisterRoutes(r)
		rm.debugRoutes.RegisterRoutes(r)
	})
}
