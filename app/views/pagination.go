package views

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hitechrobotics/catalog-api/app/utils/locale"
)

// Page is the paginated envelope every list endpoint answers with.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// Offset converts a 1-based page number into a row offset. Offsets that
// would overflow saturate at math.MaxInt, which is past any real table.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

// NewPage builds the envelope for page of size rows out of count. next and
// previous point back at the URL the client requested, locale prefix
// included.
func NewPage(r *http.Request, count int64, page, size int, results interface{}) Page {
	if page < 1 {
		page = 1
	}
	p := Page{Count: count, Results: results}

	if size > 0 && page < lastPage(count, size) {
		u := pageURL(r, page+1)
		p.Next = &u
	}
	if page > 1 {
		// past the end, previous points at the last real page
		prev := page - 1
		if last := lastPage(count, size); prev > last {
			prev = last
		}
		u := pageURL(r, prev)
		p.Previous = &u
	}
	return p
}

func lastPage(count int64, size int) int {
	if count == 0 || size <= 0 {
		return 1
	}
	return int((count + int64(size) - 1) / int64(size))
}

func pageURL(r *http.Request, page int) string {
	path := r.URL.Path
	if original, ok := locale.RequestPath(r.Context()); ok {
		path = original
	}

	q := cloneQuery(r.URL.Query())
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{Path: path, RawQuery: q.Encode()}
	return BaseURL(r) + u.String()
}

func cloneQuery(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
