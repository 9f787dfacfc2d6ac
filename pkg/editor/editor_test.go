package editor

import (
	"context"
	"testing"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/observability"
)

// countingCapture tracks how many captures are held.
type countingCapture struct {
	held     int
	acquired int
}

func (c *countingCapture) Acquire() func() {
	c.held++
	c.acquired++
	return func() { c.held-- }
}

func newTestEditor(c Capture) *Editor {
	return New(WithIDSource(&Sequence{}), WithCapture(c))
}

func TestCaptureLifecycle(t *testing.T) {
	tests := []struct {
		name  string
		start Event
		end   Event
	}{
		{"drag ended by pointer up", PointerDown{ID: "rectangle-1"}, PointerUp{}},
		{"drag ended by delete", PointerDown{ID: "rectangle-1"}, DeleteSelected{}},
		{"drag ended by cancel", PointerDown{ID: "rectangle-1"}, Cancel{}},
		{"resize ended by pointer up", HandleDown{ID: "rectangle-1", Handle: canvas.HandleS}, PointerUp{}},
		{"resize ended by delete", HandleDown{ID: "rectangle-1", Handle: canvas.HandleS}, DeleteSelected{}},
		{"drag ended by canvas press", PointerDown{ID: "rectangle-1"}, CanvasDown{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &countingCapture{}
			ed := newTestEditor(c)
			ed.Dispatch(AddElement{Kind: canvas.KindRectangle})

			ed.Dispatch(tt.start)
			if c.held != 1 || !ed.Capturing() {
				t.Fatalf("held = %d after %s, want 1", c.held, tt.start.Name())
			}
			ed.Dispatch(PointerMove{Pos: canvas.Point{X: 10, Y: 10}})
			if c.held != 1 || c.acquired != 1 {
				t.Fatalf("move changed capture: held=%d acquired=%d", c.held, c.acquired)
			}

			ed.Dispatch(tt.end)
			if c.held != 0 || ed.Capturing() {
				t.Errorf("held = %d after %s, want 0", c.held, tt.end.Name())
			}
		})
	}
}

func TestCaptureReplacedOnNewPress(t *testing.T) {
	c := &countingCapture{}
	ed := newTestEditor(c)
	ed.Dispatch(AddElement{Kind: canvas.KindRectangle})

	ed.Dispatch(PointerDown{ID: "rectangle-1"})
	ed.Dispatch(PointerDown{ID: "rectangle-1"})
	if c.held != 1 || c.acquired != 2 {
		t.Errorf("held=%d acquired=%d, want 1 and 2", c.held, c.acquired)
	}

	ed.Close()
	if c.held != 0 {
		t.Errorf("Close() left %d captures held", c.held)
	}
}

func TestSubscribe(t *testing.T) {
	ed := newTestEditor(nil)

	var seen []int
	cancel := ed.Subscribe(func(s State) { seen = append(seen, s.Elements.Len()) })

	ed.Dispatch(AddElement{Kind: canvas.KindCircle})
	ed.Dispatch(AddElement{Kind: canvas.KindText})
	cancel()
	ed.Dispatch(AddElement{Kind: canvas.KindText})

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("observer saw %v, want [1 2]", seen)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	ed := newTestEditor(nil)
	ed.Dispatch(AddElement{Kind: canvas.KindRectangle})
	snap := ed.State()

	ed.Dispatch(PointerDown{ID: "rectangle-1", Pos: canvas.Point{X: 60, Y: 60}})
	ed.Dispatch(PointerMove{Pos: canvas.Point{X: 160, Y: 160}})

	if e, _ := snap.Elements.Get("rectangle-1"); e.X != 50 {
		t.Errorf("old snapshot changed: X = %v", e.X)
	}
	if e, _ := ed.State().Elements.Get("rectangle-1"); e.X != 150 {
		t.Errorf("current X = %v, want 150", e.X)
	}
}

func TestHandleKey(t *testing.T) {
	ed := newTestEditor(nil)
	ed.Dispatch(AddElement{Kind: canvas.KindRectangle})

	if !ed.HandleKey(KeyEvent{Key: "d", Ctrl: true}) {
		t.Error("ctrl+d not handled")
	}
	if ed.State().Elements.Len() != 2 {
		t.Errorf("Len() = %d after duplicate, want 2", ed.State().Elements.Len())
	}
	if !ed.HandleKey(KeyEvent{Key: "delete"}) {
		t.Error("delete not handled")
	}
	if ed.State().Elements.Len() != 1 {
		t.Errorf("Len() = %d after delete, want 1", ed.State().Elements.Len())
	}
	if ed.HandleKey(KeyEvent{Key: "delete"}) {
		t.Error("delete handled with empty selection")
	}
}

func TestEditorUpdateProperty(t *testing.T) {
	ed := newTestEditor(nil)
	ed.Dispatch(AddElement{Kind: canvas.KindRectangle})

	if err := ed.UpdateProperty("width", "-10"); err != nil {
		t.Fatalf("UpdateProperty() error: %v", err)
	}
	if e, _ := ed.State().Elements.Get("rectangle-1"); e.Width != canvas.MinSize {
		t.Errorf("Width = %v, want %v", e.Width, canvas.MinSize)
	}

	before := ed.State()
	err := ed.UpdateProperty("height", "tall")
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("UpdateProperty(tall) error = %v, want INVALID_VALUE", err)
	}
	if e, _ := ed.State().Elements.Get("rectangle-1"); e != before.Elements.At(0) {
		t.Error("failed update changed state")
	}
}

func TestEditorAdd(t *testing.T) {
	ed := newTestEditor(nil)
	if err := ed.Add("rect"); err != nil {
		t.Fatalf("Add(rect) error: %v", err)
	}
	if err := ed.Add("star"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("Add(star) error = %v, want INVALID_KIND", err)
	}
	if ed.State().Elements.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ed.State().Elements.Len())
	}
}

type recordingHooks struct {
	observability.NoopEditorHooks
	starts, ends []string
	commands     int
}

func (h *recordingHooks) OnSessionStart(_ context.Context, mode string, _ int) {
	h.starts = append(h.starts, mode)
}

func (h *recordingHooks) OnSessionEnd(_ context.Context, mode, reason string) {
	h.ends = append(h.ends, mode+":"+reason)
}

func (h *recordingHooks) OnCommand(context.Context, string, int, int) { h.commands++ }

func TestEditorHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetEditorHooks(hooks)
	defer observability.Reset()

	ed := newTestEditor(nil)
	ed.Dispatch(AddElement{Kind: canvas.KindRectangle})
	ed.Dispatch(HandleDown{ID: "rectangle-1", Handle: canvas.HandleE})
	ed.Dispatch(PointerUp{})

	if len(hooks.starts) != 1 || hooks.starts[0] != "resizing" {
		t.Errorf("starts = %v", hooks.starts)
	}
	if len(hooks.ends) != 1 || hooks.ends[0] != "resizing:pointer_up" {
		t.Errorf("ends = %v", hooks.ends)
	}
	if hooks.commands != 3 {
		t.Errorf("commands = %d, want 3", hooks.commands)
	}
}
