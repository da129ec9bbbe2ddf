package middleware

import (
	"context"
	"net/http"

	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/MonkyMars/gecho"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// UserAuthMiddleware validates the bearer access token and stores the parsed
// claims in the request context.
func (mw *Middleware) UserAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
			if err != nil {
				mw.logger.Debug("Rejected unauthenticated request",
					gecho.Field("path", r.URL.Path),
					gecho.Field("error", err),
				)
				gecho.Unauthorized(w,
					gecho.WithMessage("Invalid or missing access token"),
					gecho.Send(),
				)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext returns the claims set by UserAuthMiddleware, or nil
// when the request did not pass through it.
func GetClaimsFromContext(ctx context.Context) *structs.AuthClaims {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
