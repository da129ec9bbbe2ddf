package orders

import (
	"errors"
	"fmt"
	"net/http"

	"merchshop_server/api/middleware"
	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandlePlaceOrder converts the caller's cart into an order. Responds 201
// with a Location header pointing at the new order.
func (orm *OrderRoutesManager) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	body, err := lib.ExtractAndValidateBody[structs.PlaceOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order request"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.PlaceOrder(r.Context(), claims.Sub, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNothingToOrder):
			gecho.BadRequest(w,
				gecho.WithMessage("Your cart is empty"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w,
				gecho.WithMessage("One or more cart items were not found"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrUnavailable), errors.Is(err, lib.ErrInsufficientStock), errors.Is(err, lib.ErrInvalidPayment):
			gecho.BadRequest(w,
				gecho.WithMessage(err.Error()),
				gecho.Send(),
			)
		default:
			handling.HandleError(err, "Failed to place order", orm.logger, w)
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", order.ID))
	gecho.Created(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
