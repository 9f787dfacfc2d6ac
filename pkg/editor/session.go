package editor

import (
	"slices"

	"github.com/matzehuels/wireframe/pkg/canvas"
)

// Mode is the pointer interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Session is an active drag or resize. Implementations are pointers so
// that two states can be compared for "same session" with ==.
type Session interface {
	Mode() Mode

	// References reports whether the session depends on element id.
	References(id canvas.ID) bool
}

// DragSession moves a set of elements with the pointer.
type DragSession struct {
	IDs     []canvas.ID  // elements being moved
	Primary canvas.ID    // element under the cursor at drag start
	Offset  canvas.Point // pointer minus primary top-left at drag start
}

func (*DragSession) Mode() Mode { return ModeDragging }

func (d *DragSession) References(id canvas.ID) bool { return slices.Contains(d.IDs, id) }

// ResizeSession resizes one element by one of its handles.
type ResizeSession struct {
	ID           canvas.ID
	Handle       canvas.Handle
	StartPointer canvas.Point
	Start        canvas.Rect
}

func (*ResizeSession) Mode() Mode { return ModeResizing }

func (r *ResizeSession) References(id canvas.ID) bool { return r.ID == id }
