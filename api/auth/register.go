package auth

import (
	"errors"
	"net/http"

	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid registration body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check your registration information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("An account with this email already exists"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Registration failed", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
