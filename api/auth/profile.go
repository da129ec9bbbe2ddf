package auth

import (
	"errors"
	"net/http"

	"merchshop_server/api/middleware"
	"merchshop_server/handling"
	"merchshop_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		gecho.Unauthorized(w,
			gecho.WithMessage("Authentication required"),
			gecho.Send(),
		)
		return
	}

	profile, err := arm.authService.Profile(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Account not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to load profile", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(profile),
		gecho.Send(),
	)
}
