package cart

import (
	"errors"
	"net/http"
	"strconv"

	"merchshop_server/api/middleware"
	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (crm *CartRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	items, err := crm.cartService.List(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Failed to load cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(items),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleAdd(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	body, err := lib.ExtractAndValidateBody[structs.AddToCartRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cart request"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	item, err := crm.cartService.Add(r.Context(), claims.Sub, body)
	if err != nil {
		crm.respondCartError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item added to cart"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	body, err := lib.ExtractAndValidateBody[structs.UpdateCartQuantityRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cart request"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	item, err := crm.cartService.UpdateQuantity(r.Context(), claims.Sub, body)
	if err != nil {
		crm.respondCartError(w, err)
		return
	}

	// nil item means the quantity dropped to zero and the row was removed
	if item == nil {
		gecho.Success(w,
			gecho.WithMessage("Item removed from cart"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleRemove(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cart item id"),
			gecho.Send(),
		)
		return
	}

	if err := crm.cartService.Remove(r.Context(), claims.Sub, id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Cart item not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to remove cart item", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed from cart"),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w,
			gecho.WithMessage("Cart item or product not found"),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrUnavailable), errors.Is(err, lib.ErrInsufficientStock):
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	default:
		handling.HandleError(err, "Cart operation failed", crm.logger, w)
	}
}
