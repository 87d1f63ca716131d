package middlewares

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/utils/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleMiddlewareStripsPrefix(t *testing.T) {
	var gotPath, gotOriginal string
	var gotLocale locale.Locale
	h := LocaleMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLocale = locale.FromContext(r.Context())
		gotOriginal, _ = locale.RequestPath(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uz/api/products/go2/?page=2", nil))

	assert.Equal(t, "/api/products/go2/", gotPath)
	assert.Equal(t, locale.UZ, gotLocale)
	assert.Equal(t, "/uz/api/products/go2/", gotOriginal)
	assert.Equal(t, "uz", rec.Header().Get("Content-Language"))
}

func TestLocaleMiddlewareHeaderFallback(t *testing.T) {
	var gotPath string
	var gotLocale locale.Locale
	h := LocaleMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLocale = locale.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/about-us/", nil)
	req.Header.Set("Accept-Language", "de-DE,ru;q=0.5")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/api/about-us/", gotPath)
	assert.Equal(t, locale.RU, gotLocale)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestAdminAuthMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	cases := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"disabled", "", "anything", http.StatusNotFound},
		{"missing", "secret", "", http.StatusUnauthorized},
		{"wrong", "secret", "nope", http.StatusForbidden},
		{"valid", "secret", "secret", http.StatusTeapot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/api/orders/", nil)
			if tc.header != "" {
				req.Header.Set(APIKeyHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			AdminAuthMiddleware(tc.key, logger)(ok).ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/", nil))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}
