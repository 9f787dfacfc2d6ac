package editor

import (
	"context"
	"slices"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/observability"
)

// Capture is the host's pointer listener registration. Acquire starts
// delivering pointer moves and releases to the editor and returns the
// function that stops it.
type Capture interface {
	Acquire() (release func())
}

// CaptureFunc adapts a function to [Capture].
type CaptureFunc func() (release func())

func (f CaptureFunc) Acquire() func() { return f() }

type nopCapture struct{}

func (nopCapture) Acquire() func() { return func() {} }

// Option configures an [Editor].
type Option func(*Editor)

// WithIDSource sets where new element ids come from. The default is
// [UUIDSource].
func WithIDSource(ids IDSource) Option {
	return func(e *Editor) { e.reducer = NewReducer(ids) }
}

// WithConfig sets the initial editor settings.
func WithConfig(cfg Config) Option {
	return func(e *Editor) { e.state = NewState(cfg) }
}

// WithCapture sets the pointer capture acquired during sessions.
func WithCapture(c Capture) Option {
	return func(e *Editor) {
		if c != nil {
			e.capture = c
		}
	}
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(e *Editor) { e.ctx = ctx }
}

type observer struct {
	id int
	fn func(State)
}

// Editor owns the current [State] and feeds events through a [Reducer].
type Editor struct {
	ctx       context.Context
	reducer   *Reducer
	state     State
	capture   Capture
	release   func()
	observers []observer
	nextObs   int
}

// New returns an editor with an empty canvas.
func New(opts ...Option) *Editor {
	e := &Editor{
		ctx:     context.Background(),
		reducer: NewReducer(nil),
		state:   NewState(DefaultConfig()),
		capture: nopCapture{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current snapshot.
func (e *Editor) State() State { return e.state }

// Capturing reports whether the pointer capture is held.
func (e *Editor) Capturing() bool { return e.release != nil }

// Subscribe registers fn to receive every new snapshot and returns a
// function that unregisters it.
func (e *Editor) Subscribe(fn func(State)) (cancel func()) {
	e.nextObs++
	id := e.nextObs
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		e.observers = slices.DeleteFunc(e.observers, func(o observer) bool { return o.id == id })
	}
}

// Dispatch applies ev and returns the new snapshot.
//
// When ev starts a session the capture is acquired; when it ends one (by
// pointer-up, cancel, a new press or deletion of a referenced element) the
// capture is released.
func (e *Editor) Dispatch(ev Event) State {
	prev := e.state
	next := e.reducer.Reduce(prev, ev)
	e.state = next

	hooks := observability.Editor()
	if prev.Session != next.Session {
		if prev.Session != nil {
			e.releaseCapture()
			hooks.OnSessionEnd(e.ctx, prev.Session.Mode().String(), ev.Name())
		}
		if next.Session != nil {
			if e.release = e.capture.Acquire(); e.release == nil {
				e.release = func() {}
			}
			hooks.OnSessionStart(e.ctx, next.Session.Mode().String(), sessionSize(next.Session))
		}
	}
	hooks.OnCommand(e.ctx, ev.Name(), next.Elements.Len(), next.Selection.Len())

	for _, o := range slices.Clone(e.observers) {
		o.fn(next)
	}
	return next
}

// HandleKey dispatches the event bound to k, if any, and reports whether
// the host should suppress its default handling. See [KeyCommand].
func (e *Editor) HandleKey(k KeyEvent) bool {
	ev, handled := KeyCommand(e.state, k)
	if ev != nil {
		e.Dispatch(ev)
	}
	return handled
}

// UpdateProperty parses a raw property edit and applies it to every
// selected element. Parse failures leave the state untouched.
func (e *Editor) UpdateProperty(name, raw string) error {
	v, err := canvas.ParseProperty(name, raw)
	if err != nil {
		return err
	}
	e.Dispatch(UpdateProperty{Value: v})
	return nil
}

// Add appends a new element of the named kind and selects it.
func (e *Editor) Add(kind string) error {
	k, err := canvas.ParseKind(kind)
	if err != nil {
		return err
	}
	e.Dispatch(AddElement{Kind: k})
	return nil
}

// Close releases the pointer capture if a session is still active.
func (e *Editor) Close() {
	if e.state.Session != nil {
		e.Dispatch(Cancel{})
	}
	e.releaseCapture()
}

func (e *Editor) releaseCapture() {
	if e.release != nil {
		e.release()
		e.release = nil
	}
}

func sessionSize(s Session) int {
	if d, ok := s.(*DragSession); ok {
		return len(d.IDs)
	}
	return 1
}
