package locale

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]Locale{
		"ru":    RU,
		"ru-RU": RU,
		"uz_UZ": UZ,
		" EN ":  EN,
	}
	for in, want := range cases {
		got, ok := Parse(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := Parse("fr")
	assert.False(t, ok)
	assert.Equal(t, Default, got)
}

func TestFromPath(t *testing.T) {
	l, rest, ok := FromPath("/ru/api/products/")
	assert.True(t, ok)
	assert.Equal(t, RU, l)
	assert.Equal(t, "/api/products/", rest)

	l, rest, ok = FromPath("/uz")
	assert.True(t, ok)
	assert.Equal(t, UZ, l)
	assert.Equal(t, "/", rest)

	l, rest, ok = FromPath("/russia/api/")
	assert.False(t, ok)
	assert.Equal(t, EN, l)
	assert.Equal(t, "/russia/api/", rest)

	_, rest, ok = FromPath("/api/products/")
	assert.False(t, ok)
	assert.Equal(t, "/api/products/", rest)
}

func TestFromHeader(t *testing.T) {
	assert.Equal(t, RU, FromHeader("ru-RU,ru;q=0.9,en;q=0.8"))
	assert.Equal(t, UZ, FromHeader("uz"))
	assert.Equal(t, EN, FromHeader("fr-FR"))
	assert.Equal(t, EN, FromHeader(""))
	assert.Equal(t, EN, FromHeader(";;;"))
	assert.Equal(t, EN, FromHeader("*"))
}

func TestFromHeaderBaseLanguageOnly(t *testing.T) {
	for _, header := range []string{"be", "kk", "tg", "ky", "uk-UA", "und-Cyrl"} {
		assert.Equal(t, EN, FromHeader(header), header)
	}
	assert.Equal(t, UZ, FromHeader("uz-Cyrl"))
	assert.Equal(t, UZ, FromHeader("uz-Latn-UZ"))
	assert.Equal(t, RU, FromHeader("kk-KZ, ru;q=0.7, en;q=0.5"))
	assert.Equal(t, UZ, FromHeader("ru;q=0.4, uz;q=0.9"))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/uz/api/about-us/", nil)
	r.Header.Set("Accept-Language", "ru")
	assert.Equal(t, UZ, FromRequest(r), "path prefix wins over header")

	r = httptest.NewRequest("GET", "/api/about-us/", nil)
	r.Header.Set("Accept-Language", "ru")
	assert.Equal(t, RU, FromRequest(r))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default, FromContext(ctx))

	_, ok := RequestPath(ctx)
	assert.False(t, ok)

	ctx = WithLocale(WithRequestPath(ctx, "/ru/api/products/"), RU)
	assert.Equal(t, RU, FromContext(ctx))
	path, ok := RequestPath(ctx)
	assert.True(t, ok)
	assert.Equal(t, "/ru/api/products/", path)
}

func TestLabelFallback(t *testing.T) {
	assert.Equal(t, "Да", T(RU, "yes"))
	assert.Equal(t, "Ha", T(UZ, "yes"))
	assert.Equal(t, "Available for sale", T(Locale("de"), "available_for_sale"))
	assert.Equal(t, "missing_key", T(RU, "missing_key"))
}
