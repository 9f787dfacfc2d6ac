package canvas

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/wireframe/pkg/errors"
)

// BringForward moves every selected element one slot toward the top.
//
// The scan runs from the top down and only swaps a selected element with an
// unselected neighbour, so a selected element never jumps over another
// selected one and unselected elements keep their relative order. The
// topmost element cannot move further.
func BringForward(c Collection, sel Selection) Collection {
	elems := slices.Clone(c.elems)
	for i := len(elems) - 2; i >= 0; i-- {
		if sel.Has(elems[i].ID) && !sel.Has(elems[i+1].ID) {
			elems[i], elems[i+1] = elems[i+1], elems[i]
		}
	}
	return Collection{elems: elems}
}

// SendBackward is the mirror of [BringForward]: every selected element
// moves one slot toward the bottom.
func SendBackward(c Collection, sel Selection) Collection {
	elems := slices.Clone(c.elems)
	for i := 1; i < len(elems); i++ {
		if sel.Has(elems[i].ID) && !sel.Has(elems[i-1].ID) {
			elems[i], elems[i-1] = elems[i-1], elems[i]
		}
	}
	return Collection{elems: elems}
}

// AlignMode selects one of the six alignment reducers.
type AlignMode string

const (
	AlignLeft   AlignMode = "left"
	AlignRight  AlignMode = "right"
	AlignTop    AlignMode = "top"
	AlignBottom AlignMode = "bottom"
	AlignCenter AlignMode = "center" // horizontal centers
	AlignMiddle AlignMode = "middle" // vertical centers
)

// AlignModes lists the modes in toolbar order.
var AlignModes = []AlignMode{AlignLeft, AlignCenter, AlignRight, AlignTop, AlignMiddle, AlignBottom}

// ParseAlignMode resolves an alignment mode name.
func ParseAlignMode(s string) (AlignMode, error) {
	m := AlignMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AlignModes, m) {
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown alignment: %q", s)
}

// Align lines up the selected elements. It needs at least two selected
// elements present in c and returns c unchanged otherwise, as it does for
// an unknown mode.
//
// The aggregate (minimum, maximum or mean) is computed over the selected
// elements before any of them moves, then applied to all in one pass. Sizes
// never change.
func Align(c Collection, sel Selection, mode AlignMode) Collection {
	selected := c.Selected(sel)
	if len(selected) < 2 {
		return c
	}

	var place func(Element) Element
	switch mode {
	case AlignLeft:
		x := math.Inf(1)
		for _, e := range selected {
			x = math.Min(x, e.X)
		}
		place = func(e Element) Element { e.X = x; return e }
	case AlignRight:
		right := math.Inf(-1)
		for _, e := range selected {
			right = math.Max(right, e.Right())
		}
		place = func(e Element) Element { e.X = right - e.Width; return e }
	case AlignTop:
		y := math.Inf(1)
		for _, e := range selected {
			y = math.Min(y, e.Y)
		}
		place = func(e Element) Element { e.Y = y; return e }
	case AlignBottom:
		bottom := math.Inf(-1)
		for _, e := range selected {
			bottom = math.Max(bottom, e.Bottom())
		}
		place = func(e Element) Element { e.Y = bottom - e.Height; return e }
	case AlignCenter:
		var sum float64
		for _, e := range selected {
			sum += e.Center().X
		}
		mean := sum / float64(len(selected))
		place = func(e Element) Element { e.X = mean - e.Width/2; return e }
	case AlignMiddle:
		var sum float64
		for _, e := range selected {
			sum += e.Center().Y
		}
		mean := sum / float64(len(selected))
		place = func(e Element) Element { e.Y = mean - e.Height/2; return e }
	default:
		return c
	}
	return c.Update(sel.IDs(), place)
}

// DrawOrder returns the elements in paint order. Unselected elements keep
// their z-order and are painted first; selected elements follow in their own
// z-order, so a selection is always visible on top.
func DrawOrder(c Collection, sel Selection) []Element {
	out := make([]Element, 0, c.Len())
	var top []Element
	for _, e := range c.elems {
		if sel.Has(e.ID) {
			top = append(top, e)
			continue
		}
		out = append(out, e)
	}
	return append(out, top...)
}
