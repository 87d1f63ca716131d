package locale

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	EN Locale = "en"
	RU Locale = "ru"
	UZ Locale = "uz"

	Default = EN
)

var Supported = []Locale{EN, RU, UZ}

type contextKey string

const (
	localeKey contextKey = "locale"
	pathKey   contextKey = "requestPath"
)

func (l Locale) String() string {
	return string(l)
}

// Parse accepts a bare code ("ru") or a regional tag ("ru-RU", "uz_UZ").
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	for _, l := range Supported {
		if string(l) == s {
			return l, true
		}
	}
	return Default, false
}

// FromPath looks for a leading /en, /ru or /uz segment and returns the locale
// together with the path that remains once the segment is removed.
func FromPath(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	for _, l := range Supported {
		if segment == string(l) {
			return l, "/" + rest, true
		}
	}
	return Default, path, false
}

// FromHeader picks the highest weighted Accept-Language entry whose base
// language is supported. Scripts and regions are ignored, so uz-Cyrl is uz;
// a language we do not serve never maps to a neighbouring one.
func FromHeader(header string) Locale {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default
	}
	for _, tag := range tags {
		base, confidence := tag.Base()
		if confidence != language.Exact {
			continue
		}
		for _, l := range Supported {
			if base.String() == string(l) {
				return l
			}
		}
	}
	return Default
}

// FromRequest resolves the locale from the path prefix, then the
// Accept-Language header.
func FromRequest(r *http.Request) Locale {
	if l, _, ok := FromPath(r.URL.Path); ok {
		return l
	}
	return FromHeader(r.Header.Get("Accept-Language"))
}

func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeKey, l)
}

// FromContext returns the locale stored by the locale middleware, or the
// default locale when none was stored.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(localeKey).(Locale); ok {
		return l
	}
	return Default
}

// WithRequestPath records the path as the client sent it, before any locale
// prefix was stripped.
func WithRequestPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey, path)
}

func RequestPath(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(pathKey).(string)
	return p, ok
}
