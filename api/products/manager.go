package products

import (
	"merchshop_server/api/middleware"
	"merchshop_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.FetchAllProducts)
		r.Get("/{id}", prm.FetchProductByID)
	})

	r.Route("/product-designs/{id}/reviews", func(r chi.Router) {
		r.Get("/", prm.ListReviews)

		r.Group(func(r chi.Router) {
			r.Use(prm.mw.UserAuthMiddleware())
			r.Post("/", prm.CreateReview)
		})
	})
}
