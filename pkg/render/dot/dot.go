package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// pointsPerInch converts canvas units to Graphviz inches.
const pointsPerInch = 72.0

// Options configures DOT export.
type Options struct {
	// Detailed adds geometry to node labels. When false, labels show the
	// text content for text elements and the id for everything else.
	Detailed bool

	// Selection outlines selected elements.
	Selection bool
}

// ToDOT converts a scene to Graphviz DOT format with pinned node positions.
// Nodes are emitted in paint order. Graphviz puts the origin at the bottom
// left, so y coordinates are flipped within the scene frame.
func ToDOT(sc render.Scene, opts Options) string {
	f := sc.Frame(render.DefaultMinWidth, render.DefaultMinHeight)

	var buf bytes.Buffer
	buf.WriteString("graph wireframe {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", sc.Background)
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  overlap=true;\n")
	fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", ftoa(f.Width), ftoa(f.Height))
	buf.WriteString("  node [fixedsize=true, style=filled, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, e := range sc.Painted() {
		attrs := fmtAttrs(e, f, opts.Selection && sc.Selected(e.ID))
		attrs = append([]string{fmt.Sprintf("label=%q", fmtLabel(e, opts.Detailed))}, attrs...)
		fmt.Fprintf(&buf, "  %q [%s];\n", string(e.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e canvas.Element, detailed bool) string {
	label := string(e.ID)
	if e.IsText() {
		label = e.Text.Content
	}
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\n%s,%s %sx%s", label, ftoa(e.X), ftoa(e.Y), ftoa(e.Width), ftoa(e.Height))
}

func fmtAttrs(e canvas.Element, f canvas.Rect, selected bool) []string {
	c := e.Center()
	x := c.X - f.X
	y := f.Height - (c.Y - f.Y)

	shape := "box"
	switch e.Kind {
	case canvas.KindCircle:
		shape = "ellipse"
	case canvas.KindText:
		shape = "plaintext"
	}

	attrs := []string{
		fmt.Sprintf("shape=%s", shape),
		fmt.Sprintf("pos=\"%s,%s!\"", ftoa(x), ftoa(y)),
		fmt.Sprintf("width=%s", ftoa(e.Width/pointsPerInch)),
		fmt.Sprintf("height=%s", ftoa(e.Height/pointsPerInch)),
	}

	fill := e.Style.Fill
	if fill == "" || strings.EqualFold(fill, "transparent") {
		fill = "none"
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))

	switch {
	case selected:
		attrs = append(attrs, fmt.Sprintf("color=%q", render.SelectionColor), fmt.Sprintf("penwidth=%s", ftoa(render.SelectionWidth)))
	case e.Style.BorderWidth > 0 && e.Style.BorderStyle != "none":
		attrs = append(attrs, fmt.Sprintf("color=%q", e.Style.BorderColor), fmt.Sprintf("penwidth=%s", ftoa(e.Style.BorderWidth)))
	default:
		attrs = append(attrs, "penwidth=0")
	}

	if e.IsText() {
		attrs = append(attrs, fmt.Sprintf("fontsize=%s", ftoa(e.Text.FontSize)), fmt.Sprintf("fontcolor=%q", e.Text.Color))
	}
	if e.Kind == canvas.KindRectangle && e.CornerRadius() > 0 {
		attrs = append(attrs, `style="rounded,filled"`)
	}
	return attrs
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG renders DOT text to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	svg, err := renderFormat(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders DOT text to PNG with the neato engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
