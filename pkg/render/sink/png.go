package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/fonts"
	"github.com/matzehuels/wireframe/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale     float64
	selection bool
	grid      bool
	minW      float64
	minH      float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGSelection draws the selection outline and handles.
func WithPNGSelection() PNGOption { return func(r *pngRenderer) { r.selection = true } }

// WithPNGGrid draws the snap grid when the scene has one.
func WithPNGGrid() PNGOption { return func(r *pngRenderer) { r.grid = true } }

// WithPNGSize sets the minimum canvas size.
func WithPNGSize(w, h float64) PNGOption {
	return func(r *pngRenderer) { r.minW, r.minH = w, h }
}

// RenderPNG rasterizes the scene.
func RenderPNG(sc render.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, minW: render.DefaultMinWidth, minH: render.DefaultMinHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid PNG scale %v", r.scale)
	}

	f := sc.Frame(r.minW, r.minH)
	w := int(math.Ceil(f.Width * r.scale))
	h := int(math.Ceil(f.Height * r.scale))

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	if bg, ok := parseColor(sc.Background); ok {
		dc.ClearWithColor(bg)
	} else {
		dc.ClearWithColor(gg.White)
	}
	dc.Scale(r.scale, r.scale)
	dc.Translate(-f.X, -f.Y)

	if r.grid && sc.Grid > 0 {
		if err := drawGrid(dc, f, sc.Grid); err != nil {
			return nil, err
		}
	}

	for _, e := range sc.Painted() {
		if err := drawElement(dc, e, r.selection && sc.Selected(e.ID)); err != nil {
			return nil, fmt.Errorf("draw %s: %w", e.ID, err)
		}
	}

	if r.selection {
		if e, ok := sc.HandleTarget(); ok {
			if err := drawHandles(dc, e.Rect); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGrid(dc *gg.Context, f canvas.Rect, pitch float64) error {
	dc.SetHexColor(render.GridColor)
	dc.SetLineWidth(0.5)
	for x := math.Ceil(f.X/pitch) * pitch; x <= f.Right(); x += pitch {
		dc.DrawLine(x, f.Y, x, f.Bottom())
	}
	for y := math.Ceil(f.Y/pitch) * pitch; y <= f.Bottom(); y += pitch {
		dc.DrawLine(f.X, y, f.Right(), y)
	}
	return dc.Stroke()
}

func tracePath(dc *gg.Context, e canvas.Element) {
	if e.Kind == canvas.KindCircle {
		c := e.Center()
		dc.DrawEllipse(c.X, c.Y, e.Width/2, e.Height/2)
		return
	}
	if r := e.CornerRadius(); r > 0 {
		dc.DrawRoundedRectangle(e.X, e.Y, e.Width, e.Height, r)
		return
	}
	dc.DrawRectangle(e.X, e.Y, e.Width, e.Height)
}

func drawElement(dc *gg.Context, e canvas.Element, selected bool) error {
	if fill, ok := parseColor(e.Style.Fill); ok {
		tracePath(dc, e)
		dc.SetColor(fill.Color())
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if s := outline(e, selected); !s.none() {
		if col, ok := parseColor(s.Color); ok {
			tracePath(dc, e)
			dc.SetColor(col.Color())
			dc.SetLineWidth(s.Width)
			dc.SetDash(s.Dash...)
			err := dc.Stroke()
			dc.SetDash()
			if err != nil {
				return err
			}
		}
	}

	if e.IsText() && e.Text.Content != "" {
		return drawText(dc, e)
	}
	return nil
}

func drawText(dc *gg.Context, e canvas.Element) error {
	src, err := fonts.Regular()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	col, ok := parseColor(e.Text.Color)
	if !ok {
		return nil
	}
	dc.SetFont(src.Face(e.Text.FontSize))
	dc.SetColor(col.Color())
	dc.DrawStringAnchored(e.Text.Content, e.X+e.Text.Padding, e.Y+e.Text.Padding, 0, 1)
	return nil
}

func drawHandles(dc *gg.Context, r canvas.Rect) error {
	fill, _ := parseColor(render.HandleFill)
	edge, _ := parseColor(render.HandleStroke)
	for _, h := range canvas.Handles {
		p := h.Position(r)
		dc.DrawCircle(p.X, p.Y, render.HandleSize/2)
		dc.SetColor(fill.Color())
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetColor(edge.Color())
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
