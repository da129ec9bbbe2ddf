package auth

import (
	"errors"
	"net/http"

	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the token pair. The expired access token proves the
// caller's identity, the opaque refresh token proves possession.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RefreshRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Access token and refresh token are required"),
			gecho.Send(),
		)
		return
	}

	auth, err := arm.authService.Refresh(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidToken) || errors.Is(err, lib.ErrExpiredToken) {
			gecho.BadRequest(w,
				gecho.WithMessage("Invalid or expired refresh token"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Token refresh failed", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(auth),
		gecho.Send(),
	)
}
