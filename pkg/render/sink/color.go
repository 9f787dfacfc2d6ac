package sink

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/wireframe/pkg/render"
)

// parseColor converts a CSS color string to a gg color. The second result
// is false for transparent or unparseable colors, which are not painted.
func parseColor(s string) (gg.RGBA, bool) {
	hex, ok := render.NormalizeColor(s)
	if !ok {
		return gg.RGBA{}, false
	}
	return gg.Hex(hex), true
}
