package render

import (
	"math"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
)

// Selection and handle styling shared by every renderer.
const (
	SelectionColor   = "#007bff"
	SelectionWidth   = 2.0
	HandleSize       = 8.0
	HandleFill       = "#007bff"
	HandleStroke     = "#ffffff"
	GridColor        = "#dde1e6"
	DefaultMargin    = 40.0
	DefaultMinWidth  = 800.0
	DefaultMinHeight = 600.0
)

// Scene is an immutable, render-ready snapshot.
type Scene struct {
	Elements   canvas.Collection
	Selection  canvas.Selection
	Background string
	Grid       float64 // snap pitch, 0 when snapping is off
}

// SceneOf captures the renderable parts of an editor state.
func SceneOf(s editor.State) Scene {
	sc := Scene{
		Elements:   s.Elements,
		Selection:  s.Selection.Prune(s.Elements),
		Background: s.Config.Background,
	}
	if s.Config.SnapToGrid {
		sc.Grid = s.Config.GridSize
	}
	return sc
}

// Painted returns the elements in paint order (see [canvas.DrawOrder]).
func (s Scene) Painted() []canvas.Element {
	return canvas.DrawOrder(s.Elements, s.Selection)
}

// Selected reports whether id is selected.
func (s Scene) Selected(id canvas.ID) bool { return s.Selection.Has(id) }

// HandleTarget returns the element whose resize handles should be drawn.
// The second result is false unless exactly one element is selected.
func (s Scene) HandleTarget() (canvas.Element, bool) {
	id, ok := s.Selection.Single()
	if !ok {
		return canvas.Element{}, false
	}
	return s.Elements.Get(id)
}

// HandleBox returns the hit box of handle h on r.
func HandleBox(r canvas.Rect, h canvas.Handle) canvas.Rect {
	p := h.Position(r)
	return canvas.Rect{X: p.X - HandleSize/2, Y: p.Y - HandleSize/2, Width: HandleSize, Height: HandleSize}
}

// Frame returns the drawing area: the canvas origin through the far edge
// of every element plus a margin, never smaller than minW by minH. Elements
// dragged to negative coordinates extend the frame up and left.
func (s Scene) Frame(minW, minH float64) canvas.Rect {
	f := canvas.Rect{Width: minW, Height: minH}
	b, ok := s.Elements.Bounds()
	if !ok {
		return f
	}
	x0 := math.Min(0, b.X-DefaultMargin)
	y0 := math.Min(0, b.Y-DefaultMargin)
	x1 := math.Max(minW, b.Right()+DefaultMargin)
	y1 := math.Max(minH, b.Bottom()+DefaultMargin)
	return canvas.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
