package views

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/utils/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 12, Offset(2, 12))
	assert.Equal(t, 0, Offset(0, 12))
}

func TestOffsetSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/4+1, 12))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 12))
	assert.Positive(t, Offset(math.MaxInt/12, 12))
}

func TestNewPageHugePageNumber(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/api/products/?page=4611686018427387904", nil)
	p := NewPage(r, 1, 4611686018427387904, 12, []int{})

	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, "http://api.test/api/products/", *p.Previous)
}

func TestNewPageLinks(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/api/products/?category=dogs", nil)

	first := NewPage(r, 13, 1, 12, []int{})
	require.NotNil(t, first.Next)
	assert.Equal(t, "http://api.test/api/products/?category=dogs&page=2", *first.Next)
	assert.Nil(t, first.Previous)

	r = httptest.NewRequest("GET", "http://api.test/api/products/?category=dogs&page=2", nil)
	second := NewPage(r, 13, 2, 12, []int{})
	assert.Nil(t, second.Next)
	require.NotNil(t, second.Previous)
	assert.Equal(t, "http://api.test/api/products/?category=dogs", *second.Previous)
}

func TestNewPagePastEnd(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/api/products/?page=99", nil)
	p := NewPage(r, 13, 99, 12, []int{})

	assert.EqualValues(t, 13, p.Count)
	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, "http://api.test/api/products/?page=2", *p.Previous)
}

func TestNewPageKeepsLocalePrefix(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.test/api/categories/", nil)
	r = r.WithContext(locale.WithRequestPath(r.Context(), "/ru/api/categories/"))

	p := NewPage(r, 30, 1, 12, []int{})
	require.NotNil(t, p.Next)
	assert.Equal(t, "http://api.test/ru/api/categories/?page=2", *p.Next)
}
