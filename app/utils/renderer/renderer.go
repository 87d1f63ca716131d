package renderer

import (
	"github.com/unrolled/render"
)

// New returns the JSON renderer shared by every handler. Indented output is
// only for development.
func New(indent bool) *render.Render {
	return render.New(render.Options{
		IndentJSON:   indent,
		UnEscapeHTML: true,
	})
}
