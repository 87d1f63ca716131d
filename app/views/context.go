// Package views shapes catalog rows into the JSON the site frontend reads.
// Every localized attribute goes through models.Text.Resolve with the
// request locale; nothing here re-implements the fallback.
package views

import (
	"net/http"
	"strings"

	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/utils/locale"
)

const (
	DefaultCardImage       = "defaults/default-card.jpg"
	DefaultAdditionalImage = "defaults/default-additional.jpg"
)

// Context carries what a projection needs from the request.
type Context struct {
	Locale   locale.Locale
	BaseURL  string
	MediaURL string
}

// NewContext reads the locale and origin from r. mediaURL is the public
// prefix of uploaded files, e.g. "/media/".
func NewContext(r *http.Request, mediaURL string) Context {
	return Context{
		Locale:   locale.FromContext(r.Context()),
		BaseURL:  BaseURL(r),
		MediaURL: normalizeMediaURL(mediaURL),
	}
}

// BaseURL is scheme://host of the request, honouring X-Forwarded-Proto.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + r.Host
}

func normalizeMediaURL(m string) string {
	if m == "" {
		return "/media/"
	}
	if !strings.HasSuffix(m, "/") {
		m += "/"
	}
	return m
}

func (c Context) T(t models.Text) string {
	return t.Resolve(c.Locale)
}

func (c Context) Label(key string) string {
	return locale.T(c.Locale, key)
}

// Media turns a stored file path into an absolute URL.
func (c Context) Media(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(c.MediaURL, "http://") || strings.HasPrefix(c.MediaURL, "https://") {
		return c.MediaURL + strings.TrimPrefix(path, "/")
	}
	if strings.HasPrefix(path, c.MediaURL) {
		return c.BaseURL + path
	}
	return c.BaseURL + c.MediaURL + strings.TrimPrefix(path, "/")
}

// MediaPtr is Media for nullable JSON fields.
func (c Context) MediaPtr(path string) *string {
	u := c.Media(path)
	if u == "" {
		return nil
	}
	return &u
}

// MediaOr falls back to another stored path when path is empty.
func (c Context) MediaOr(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return c.Media(fallback)
	}
	return c.Media(path)
}
