package orders

import (
	"errors"
	"net/http"
	"strconv"

	"merchshop_server/api/middleware"
	"merchshop_server/handling"
	"merchshop_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (orm *OrderRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	orders, err := orm.orderService.ListOrders(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Failed to list orders", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order id"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrder(r.Context(), claims.Sub, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Order not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to load order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := orm.orderService.ListPaymentMethods(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to list payment methods", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(methods),
		gecho.Send(),
	)
}
