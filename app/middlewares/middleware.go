package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/hitechrobotics/catalog-api/app/utils/locale"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

// LocaleMiddleware resolves the request locale and strips a leading /en, /ru
// or /uz segment so the router only ever sees unprefixed paths. The path as
// sent is kept for building absolute links.
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		original := r.URL.Path
		l, rest, prefixed := locale.FromPath(original)
		if !prefixed {
			l = locale.FromHeader(r.Header.Get("Accept-Language"))
		}

		ctx := locale.WithLocale(r.Context(), l)
		ctx = locale.WithRequestPath(ctx, original)
		r = r.WithContext(ctx)

		if prefixed {
			u := *r.URL
			u.Path = rest
			u.RawPath = ""
			r.URL = &u
		}
		w.Header().Set("Content-Language", l.String())
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware reuses an incoming X-Request-ID or assigns a new one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
