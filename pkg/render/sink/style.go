package sink

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// stroke is the resolved outline of an element.
type stroke struct {
	Color string
	Width float64
	Dash  []float64
}

// none reports whether nothing should be stroked.
func (s stroke) none() bool { return s.Width <= 0 || s.Color == "" }

// outline resolves the border of e. Selected elements trade their border
// for the selection outline.
func outline(e canvas.Element, selected bool) stroke {
	if selected {
		return stroke{Color: render.SelectionColor, Width: render.SelectionWidth}
	}
	s := stroke{Color: e.Style.BorderColor, Width: e.Style.BorderWidth}
	switch strings.ToLower(e.Style.BorderStyle) {
	case "none", "hidden":
		s.Width = 0
	case "dashed":
		s.Dash = []float64{3 * s.Width, 2 * s.Width}
	case "dotted":
		s.Dash = []float64{s.Width, s.Width}
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
