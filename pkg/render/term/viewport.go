package term

import (
	"math"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// Canvas units covered by one terminal cell.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Viewport is the visible window onto the canvas.
type Viewport struct {
	Origin canvas.Point // canvas coordinate of the top-left cell corner
	Cols   int
	Rows   int
}

// Fit returns a cols by rows viewport whose origin is the scene frame's
// origin, aligned down to whole cells.
func Fit(sc render.Scene, cols, rows int) Viewport {
	f := sc.Frame(render.DefaultMinWidth, render.DefaultMinHeight)
	return Viewport{
		Origin: canvas.Point{
			X: math.Floor(f.X/CellWidth) * CellWidth,
			Y: math.Floor(f.Y/CellHeight) * CellHeight,
		},
		Cols: max(cols, 0),
		Rows: max(rows, 0),
	}
}

// Pan shifts the viewport by whole cells.
func (v Viewport) Pan(cols, rows int) Viewport {
	v.Origin.X += float64(cols) * CellWidth
	v.Origin.Y += float64(rows) * CellHeight
	return v
}

// Resize keeps the origin and changes the visible cell count.
func (v Viewport) Resize(cols, rows int) Viewport {
	v.Cols, v.Rows = max(cols, 0), max(rows, 0)
	return v
}

// Contains reports whether the cell lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}

// ToCanvas returns the canvas point at the center of a cell.
func (v Viewport) ToCanvas(col, row int) canvas.Point {
	return canvas.Point{
		X: v.Origin.X + (float64(col)+0.5)*CellWidth,
		Y: v.Origin.Y + (float64(row)+0.5)*CellHeight,
	}
}

// ToCell returns the cell containing p. The result may lie outside the
// viewport.
func (v Viewport) ToCell(p canvas.Point) (col, row int) {
	col = int(math.Floor((p.X - v.Origin.X) / CellWidth))
	row = int(math.Floor((p.Y - v.Origin.Y) / CellHeight))
	return col, row
}

// covers reports whether the sample point p falls on e. Circles use their
// inscribed ellipse, everything else its bounding box.
func covers(e canvas.Element, p canvas.Point) bool {
	if !e.Contains(p) {
		return false
	}
	if e.Kind != canvas.KindCircle {
		return true
	}
	rx, ry := e.Width/2, e.Height/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := e.Center()
	dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1
}
