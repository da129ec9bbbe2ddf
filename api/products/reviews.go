package products

import (
	"errors"
	"net/http"
	"strconv"

	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (prm *ProductRoutesManager) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product design id"),
			gecho.Send(),
		)
		return
	}

	reviews, err := prm.catalogService.ListReviews(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product design not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to list reviews", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(reviews),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) CreateReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product design id"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateReviewRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid review"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	review, err := prm.catalogService.CreateReview(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product design not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to create review", prm.logger, w)
		return
	}

	gecho.Created(w,
		gecho.WithData(review),
		gecho.Send(),
	)
}
