package canvas

import (
	"math"
	"strings"

	"github.com/matzehuels/wireframe/pkg/errors"
)

// ID identifies an element. IDs are assigned once at creation and never
// reused or mutated.
type ID string

// Kind is the element variant. It is fixed for the element's lifetime.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindText      Kind = "text"
)

// Kinds lists every element kind in palette order.
var Kinds = []Kind{KindRectangle, KindText, KindCircle}

// ParseKind resolves a kind name. "rect" is accepted as shorthand for
// rectangle.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return KindRectangle, nil
	case "circle":
		return KindCircle, nil
	case "text":
		return KindText, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown element kind: %q", s)
}

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Style holds the box styling shared by every kind.
type Style struct {
	Fill         string  // background color, any CSS color string
	BorderWidth  float64 // >= 0
	BorderStyle  string  // solid, dashed, dotted, none
	BorderColor  string
	BorderRadius float64 // ignored for circles, which are always full ellipses
}

// TextStyle holds the attributes only text elements carry.
type TextStyle struct {
	Content  string
	FontSize float64
	Color    string
	Padding  float64
}

// Element is a single placed shape. Text is meaningful only for
// [KindText]; it stays zero for the other kinds.
type Element struct {
	ID   ID
	Kind Kind
	Rect
	Style Style
	Text  TextStyle
}

// IsText reports whether the element carries text attributes.
func (e Element) IsText() bool { return e.Kind == KindText }

// CornerRadius returns the radius a renderer should draw. Circles always
// render as full ellipses, so their stored radius is ignored.
func (e Element) CornerRadius() float64 {
	limit := math.Min(e.Width, e.Height) / 2
	if e.Kind == KindCircle {
		return limit
	}
	return math.Min(math.Max(e.Style.BorderRadius, 0), limit)
}
