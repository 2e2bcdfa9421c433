package middleware

import (
	"net/http"

	"fartgen-backend/infrastructure/config"
)

// SecurityHeaders decorates every response with browser hardening headers.
// HSTS is set only in production so local HTTP development keeps working.
// Headers are written before dispatch, which covers every write path the
// wrapped handler can take.
func SecurityHeaders(cfg *config.Settings) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")

			if cfg.IsProduction() {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
