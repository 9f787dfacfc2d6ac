package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/fonts"
	"github.com/matzehuels/wireframe/pkg/render"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	grid      bool
	selection bool
	font      bool
	minW      float64
	minH      float64
}

// WithGrid draws the snap grid behind the elements when the scene has one.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithSelection draws the selection outline and, for a single selected
// element, its eight resize handles.
func WithSelection() SVGOption { return func(r *svgRenderer) { r.selection = true } }

// WithEmbeddedFont embeds the Go Regular font so text renders identically
// in every viewer.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.font = true } }

// WithSize sets the minimum canvas size. The canvas grows to fit elements
// beyond it.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.minW, r.minH = w, h }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{minW: render.DefaultMinWidth, minH: render.DefaultMinHeight}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(sc render.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := sc.Frame(r.minW, r.minH)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.X, f.Y, f.Width, f.Height, f.Width, f.Height)

	r.renderDefs(&buf, sc)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		f.X, f.Y, f.Width, f.Height, escapeXML(sc.Background))
	if r.grid && sc.Grid > 0 {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#grid)"/>`+"\n",
			f.X, f.Y, f.Width, f.Height)
	}

	for _, e := range sc.Painted() {
		renderElement(&buf, e, r.selection && sc.Selected(e.ID))
	}

	if r.selection {
		if e, ok := sc.HandleTarget(); ok {
			renderHandles(&buf, e.Rect)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderDefs(buf *bytes.Buffer, sc render.Scene) {
	needGrid := r.grid && sc.Grid > 0
	if !needGrid && !r.font {
		return
	}
	buf.WriteString("  <defs>\n")
	if r.font {
		fmt.Fprintf(buf, "    <style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s); }</style>\n",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	if needGrid {
		p := sc.Grid
		fmt.Fprintf(buf, `    <pattern id="grid" width="%g" height="%g" patternUnits="userSpaceOnUse">`+"\n", p, p)
		fmt.Fprintf(buf, `      <path d="M %g 0 L 0 0 0 %g" fill="none" stroke="%s" stroke-width="0.5"/>`+"\n", p, p, render.GridColor)
		buf.WriteString("    </pattern>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderElement(buf *bytes.Buffer, e canvas.Element, selected bool) {
	fmt.Fprintf(buf, `  <g id="el-%s" data-kind="%s">`+"\n", escapeXML(string(e.ID)), e.Kind)

	fill := e.Style.Fill
	if render.IsTransparent(fill) {
		fill = "none"
	}
	paint := fmt.Sprintf(`fill="%s"%s`, escapeXML(fill), strokeAttrs(outline(e, selected)))

	if e.Kind == canvas.KindCircle {
		c := e.Center()
		fmt.Fprintf(buf, `    <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s/>`+"\n",
			c.X, c.Y, e.Width/2, e.Height/2, paint)
	} else {
		r := e.CornerRadius()
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" ry="%.1f" %s/>`+"\n",
			e.X, e.Y, e.Width, e.Height, r, r, paint)
	}

	if e.IsText() && e.Text.Content != "" {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%g" fill="%s" dominant-baseline="hanging">%s</text>`+"\n",
			e.X+e.Text.Padding, e.Y+e.Text.Padding, escapeXML(fonts.FallbackFontFamily),
			e.Text.FontSize, escapeXML(e.Text.Color), escapeXML(e.Text.Content))
	}
	buf.WriteString("  </g>\n")
}

func strokeAttrs(s stroke) string {
	if s.none() {
		return ` stroke="none"`
	}
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%g"`, escapeXML(s.Color), s.Width)
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%g", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return attrs
}

func renderHandles(buf *bytes.Buffer, r canvas.Rect) {
	for _, h := range canvas.Handles {
		p := h.Position(r)
		fmt.Fprintf(buf, `  <circle class="handle" data-handle="%s" cx="%.1f" cy="%.1f" r="%g" fill="%s" stroke="%s"/>`+"\n",
			h, p.X, p.Y, render.HandleSize/2, render.HandleFill, render.HandleStroke)
	}
}
