package auth

import (
	"errors"
	"net/http"

	"merchshop_server/handling"
	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid login body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Email and password are required"),
			gecho.Send(),
		)
		return
	}

	auth, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			arm.logger.Warn("Login failed", gecho.Field("email", body.Email))
			gecho.Unauthorized(w,
				gecho.WithMessage("Invalid credentials"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Login failed", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(auth),
		gecho.Send(),
	)
}
