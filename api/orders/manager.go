package orders

import (
	"merchshop_server/api/middleware"
	"merchshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware())

		// Checkout page lookup, only meaningful to a signed-in buyer
		r.Get("/payment-methods", orm.HandleListPaymentMethods)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/place-order", orm.HandlePlaceOrder)
			r.Get("/", orm.HandleList)
			r.Get("/{id}", orm.HandleGet)
		})
	})
}
