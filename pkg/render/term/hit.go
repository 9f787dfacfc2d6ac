package term

import (
	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// HitKind classifies what a cell press landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitElement
	HitHandle
)

// Hit is the result of [HitTest].
type Hit struct {
	Kind   HitKind
	ID     canvas.ID
	Handle canvas.Handle
}

// HitTest resolves the target under a cell. Resize handles of a single
// selected element win over elements, and among elements the one painted
// last wins. Cells outside the viewport hit nothing.
func HitTest(sc render.Scene, v Viewport, col, row int) Hit {
	if !v.Contains(col, row) {
		return Hit{}
	}
	if h, ok := handleAt(sc, v, col, row); ok {
		return h
	}
	if e, ok := elementAt(sc.Painted(), v.ToCanvas(col, row)); ok {
		return Hit{Kind: HitElement, ID: e.ID}
	}
	return Hit{}
}

func handleAt(sc render.Scene, v Viewport, col, row int) (Hit, bool) {
	e, ok := sc.HandleTarget()
	if !ok {
		return Hit{}, false
	}
	for _, h := range canvas.Handles {
		c, r := v.ToCell(h.Position(e.Rect))
		if c == col && r == row {
			return Hit{Kind: HitHandle, ID: e.ID, Handle: h}, true
		}
	}
	return Hit{}, false
}

// elementAt returns the topmost element of painted covering p.
func elementAt(painted []canvas.Element, p canvas.Point) (canvas.Element, bool) {
	for i := len(painted) - 1; i >= 0; i-- {
		if covers(painted[i], p) {
			return painted[i], true
		}
	}
	return canvas.Element{}, false
}
