// Package editor implements the wireframe editing engine: an explicit state
// container driven by pointer, keyboard and command events.
//
// # State and Events
//
// [State] holds the element collection, the selection, the active
// interaction session and the editor settings. [Reducer.Reduce] is a
// reducer (State, Event) -> State; it never mutates its input, so every
// state handed out is an immutable snapshot.
//
// # Sessions
//
// Pointer interaction is a small state machine:
//
//	Idle ──PointerDown──▶ Dragging ──PointerUp──▶ Idle
//	Idle ──HandleDown───▶ Resizing ──PointerUp──▶ Idle
//
// A [DragSession] moves every element of the drag set by the same delta as
// the primary element. A [ResizeSession] applies [canvas.Resize] to the
// single selected element. Deleting an element referenced by a session,
// [Cancel], or a new pointer press ends the session.
//
// # Editor
//
// [Editor] wraps the reducer for hosts. It owns the current state, tells
// observers about every new snapshot, and acquires a [Capture] while a
// session is active so the host only listens for pointer moves while they
// matter. The capture is released on every path that ends a session.
//
// Editor is not safe for concurrent use. Hosts drive it from a single event
// loop, which is how the terminal front-end uses it.
package editor
