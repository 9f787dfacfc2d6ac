package editor

import "github.com/matzehuels/wireframe/pkg/canvas"

// Event is anything the reducer consumes. Name is a stable snake_case
// identifier used by scripts, logs and hooks.
type Event interface {
	Name() string
}

// Pointer events.
type (
	// PointerDown is a press on an element body.
	PointerDown struct {
		ID    canvas.ID
		Pos   canvas.Point
		Shift bool
	}

	// HandleDown is a press on a resize handle of the selected element.
	HandleDown struct {
		ID     canvas.ID
		Handle canvas.Handle
		Pos    canvas.Point
	}

	// CanvasDown is a press on the empty canvas.
	CanvasDown struct{}

	// PointerMove is a pointer motion while a session is active.
	PointerMove struct {
		Pos canvas.Point
	}

	// PointerUp releases the pointer anywhere, inside the canvas or not.
	PointerUp struct{}

	// Cancel ends any session without further geometry changes.
	Cancel struct{}
)

// Command events.
type (
	AddElement struct {
		Kind canvas.Kind
	}
	DuplicateSelected struct{}
	DeleteSelected    struct{}
	BringForward      struct{}
	SendBackward      struct{}
	Align             struct {
		Mode canvas.AlignMode
	}
	UpdateProperty struct {
		Value canvas.PropertyValue
	}
	SetSnap struct {
		Enabled bool
	}
	SetBackground struct {
		Color string
	}
)

// Selection events.
type (
	Select struct {
		ID canvas.ID
	}
	Toggle struct {
		ID canvas.ID
	}
	ClearSelection struct{}
)

func (PointerDown) Name() string       { return "pointer_down" }
func (HandleDown) Name() string        { return "handle_down" }
func (CanvasDown) Name() string        { return "canvas_down" }
func (PointerMove) Name() string       { return "pointer_move" }
func (PointerUp) Name() string         { return "pointer_up" }
func (Cancel) Name() string            { return "cancel" }
func (AddElement) Name() string        { return "add" }
func (DuplicateSelected) Name() string { return "duplicate" }
func (DeleteSelected) Name() string    { return "delete" }
func (BringForward) Name() string      { return "bring_forward" }
func (SendBackward) Name() string      { return "send_backward" }
func (Align) Name() string             { return "align" }
func (UpdateProperty) Name() string    { return "set" }
func (SetSnap) Name() string           { return "snap" }
func (SetBackground) Name() string     { return "background" }
func (Select) Name() string            { return "select" }
func (Toggle) Name() string            { return "toggle" }
func (ClearSelection) Name() string    { return "clear" }
