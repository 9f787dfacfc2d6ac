package canvas

import (
	"math"
	"strings"

	"github.com/matzehuels/wireframe/pkg/errors"
)

const (
	// MinSize is the smallest width or height a resize can produce.
	MinSize = 20.0

	// DefaultGridSize is the snap pitch used when snapping is enabled.
	DefaultGridSize = 10.0
)

// Snap rounds v to the nearest multiple of pitch. Halves round up, toward
// positive infinity. A non-positive pitch returns v unchanged.
func Snap(v, pitch float64) float64 {
	if pitch <= 0 {
		return v
	}
	return math.Floor(v/pitch+0.5) * pitch
}

// Handle names one of the eight resize hit targets on an element's
// bounding box.
type Handle string

const (
	HandleN  Handle = "n"
	HandleS  Handle = "s"
	HandleE  Handle = "e"
	HandleW  Handle = "w"
	HandleNE Handle = "ne"
	HandleNW Handle = "nw"
	HandleSE Handle = "se"
	HandleSW Handle = "sw"
)

// Handles lists all handles clockwise starting at the top-left corner.
var Handles = []Handle{HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW}

// ParseHandle resolves a compass handle name.
func ParseHandle(s string) (Handle, error) {
	h := Handle(strings.ToLower(strings.TrimSpace(s)))
	if h.Valid() {
		return h, nil
	}
	return "", errors.New(errors.ErrCodeInvalidHandle, "unknown resize handle: %q", s)
}

// Valid reports whether h is one of the eight compass handles.
func (h Handle) Valid() bool {
	switch h {
	case HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW:
		return true
	}
	return false
}

func (h Handle) north() bool { return strings.HasPrefix(string(h), "n") }
func (h Handle) south() bool { return strings.HasPrefix(string(h), "s") }
func (h Handle) east() bool  { return strings.HasSuffix(string(h), "e") }
func (h Handle) west() bool  { return strings.HasSuffix(string(h), "w") }

// Position returns the hit-target center of h on the box r.
func (h Handle) Position(r Rect) Point {
	p := r.Center()
	switch {
	case h.west():
		p.X = r.X
	case h.east():
		p.X = r.Right()
	}
	switch {
	case h.north():
		p.Y = r.Y
	case h.south():
		p.Y = r.Bottom()
	}
	return p
}

// Resize returns the geometry produced by dragging handle h by (dx, dy)
// from start. Both axes clamp at [MinSize]; the edge or corner opposite
// the handle stays where it was in start. An invalid handle returns start.
func Resize(start Rect, h Handle, dx, dy float64) Rect {
	r := start
	if h.east() {
		r.Width = math.Max(MinSize, start.Width+dx)
	}
	if h.west() {
		r.Width = math.Max(MinSize, start.Width-dx)
		r.X = start.X + (start.Width - r.Width)
	}
	if h.south() {
		r.Height = math.Max(MinSize, start.Height+dy)
	}
	if h.north() {
		r.Height = math.Max(MinSize, start.Height-dy)
		r.Y = start.Y + (start.Height - r.Height)
	}
	return r
}
