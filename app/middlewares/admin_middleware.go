package middlewares

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

const APIKeyHeader = "X-API-Key"

// AdminAuthMiddleware lets a request through only when X-API-Key matches key.
// With an empty key the admin surface answers 404, as if it was not mounted.
func AdminAuthMiddleware(key string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				writeJSONError(w, http.StatusNotFound, `{"detail":"Not found."}`)
				return
			}

			got := r.Header.Get(APIKeyHeader)
			if got == "" {
				logger.Info("admin request without api key", slog.String("path", r.URL.Path))
				writeJSONError(w, http.StatusUnauthorized, `{"detail":"Authentication credentials were not provided."}`)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.Warn("admin request with wrong api key",
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				writeJSONError(w, http.StatusForbidden, `{"detail":"Invalid API key."}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
