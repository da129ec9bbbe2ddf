package middleware

import (
	"net/http"
	"strconv"
	"time"

	"merchshop_server/api/health"

	chiware "github.com/go-chi/chi/v5/middleware"
)

// MetricsMiddleware records request counts and latency per method/path/status.
func (mw *Middleware) MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := normalizeEndpoint(r.URL.Path)
			status := strconv.Itoa(ww.Status())

			health.HttpRequests.WithLabelValues(r.Method, path, status).Inc()
			health.HttpDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}
