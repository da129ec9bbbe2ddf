package cart

import (
	"merchshop_server/api/middleware"
	"merchshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	mw          *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware())

		r.Get("/", crm.HandleList)
		r.Post("/add", crm.HandleAdd)
		r.Put("/update-quantity", crm.HandleUpdateQuantity)
		r.Delete("/remove/{id}", crm.HandleRemove)
	})
}
