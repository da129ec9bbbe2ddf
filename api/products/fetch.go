package products

import (
	"errors"
	"net/http"
	"strconv"

	"merchshop_server/handling"
	"merchshop_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with filtering, pagination and sorting
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	page, err := prm.catalogService.ListProducts(ctx, opts)
	if err != nil {
		handling.HandleError(err, "Failed to fetch products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product id"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to fetch product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
