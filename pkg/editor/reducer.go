package editor

import (
	"slices"

	"github.com/matzehuels/wireframe/pkg/canvas"
)

// Reducer applies events to states. It is the only place state
// transitions are defined.
type Reducer struct {
	IDs IDSource
}

// NewReducer returns a reducer drawing ids from ids, or from a
// [UUIDSource] when ids is nil.
func NewReducer(ids IDSource) *Reducer {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Reducer{IDs: ids}
}

// Reduce returns the state produced by ev. Unknown events and events that
// reference missing elements return s unchanged. Reduce never fails.
func (r *Reducer) Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case PointerDown:
		return pointerDown(s, ev)
	case HandleDown:
		return handleDown(s, ev)
	case CanvasDown:
		s.Session = nil
		s.Selection = s.Selection.Clear()
		return s
	case PointerMove:
		return pointerMove(s, ev)
	case PointerUp, Cancel:
		s.Session = nil
		return s
	case AddElement:
		return r.add(s, ev.Kind)
	case DuplicateSelected:
		return r.duplicate(s)
	case DeleteSelected:
		return deleteSelected(s)
	case BringForward:
		s.Elements = canvas.BringForward(s.Elements, s.Selection)
		return s
	case SendBackward:
		s.Elements = canvas.SendBackward(s.Elements, s.Selection)
		return s
	case Align:
		s.Elements = canvas.Align(s.Elements, s.Selection, ev.Mode)
		return s
	case UpdateProperty:
		if s.Selection.Empty() {
			return s
		}
		s.Elements = s.Elements.Update(s.Selection.IDs(), ev.Value.Apply)
		return s
	case SetSnap:
		s.Config.SnapToGrid = ev.Enabled
		return s
	case SetBackground:
		s.Config.Background = ev.Color
		return s
	case Select:
		if s.Elements.Has(ev.ID) {
			s.Selection = s.Selection.SelectSingle(ev.ID)
		}
		return s
	case Toggle:
		if s.Elements.Has(ev.ID) {
			s.Selection = s.Selection.Toggle(ev.ID)
		}
		return s
	case ClearSelection:
		s.Selection = s.Selection.Clear()
		return s
	}
	return s
}

// =============================================================================
// Pointer interaction
// =============================================================================

func pointerDown(s State, ev PointerDown) State {
	e, ok := s.Elements.Get(ev.ID)
	if !ok {
		return s
	}
	s.Session = nil

	// Shift-press only toggles membership; it never starts a drag.
	if ev.Shift {
		s.Selection = s.Selection.Toggle(ev.ID)
		return s
	}

	if !s.Selection.Has(ev.ID) {
		s.Selection = s.Selection.SelectSingle(ev.ID)
	}
	s.Session = &DragSession{
		IDs:     s.Elements.SelectedIDs(s.Selection),
		Primary: ev.ID,
		Offset:  ev.Pos.Sub(e.Origin()),
	}
	return s
}

func handleDown(s State, ev HandleDown) State {
	id, ok := s.Selection.Single()
	if !ok || id != ev.ID || !ev.Handle.Valid() {
		return s
	}
	e, ok := s.Elements.Get(id)
	if !ok {
		return s
	}
	s.Session = &ResizeSession{
		ID:           id,
		Handle:       ev.Handle,
		StartPointer: ev.Pos,
		Start:        e.Rect,
	}
	return s
}

func pointerMove(s State, ev PointerMove) State {
	switch sess := s.Session.(type) {
	case *DragSession:
		primary, ok := s.Elements.Get(sess.Primary)
		if !ok {
			return s
		}
		target := ev.Pos.Sub(sess.Offset)
		if s.Config.SnapToGrid {
			target.X = canvas.Snap(target.X, s.Config.GridSize)
			target.Y = canvas.Snap(target.Y, s.Config.GridSize)
		}
		dx, dy := target.X-primary.X, target.Y-primary.Y
		if dx == 0 && dy == 0 {
			return s
		}
		s.Elements = s.Elements.Update(sess.IDs, func(e canvas.Element) canvas.Element {
			e.Rect = e.Rect.Translate(dx, dy)
			return e
		})
	case *ResizeSession:
		if !s.Elements.Has(sess.ID) {
			return s
		}
		d := ev.Pos.Sub(sess.StartPointer)
		r := canvas.Resize(sess.Start, sess.Handle, d.X, d.Y)
		s.Elements = s.Elements.Update([]canvas.ID{sess.ID}, func(e canvas.Element) canvas.Element {
			e.Rect = r
			return e
		})
	}
	return s
}

// =============================================================================
// Commands
// =============================================================================

// freshID draws ids until one is unused in c.
func (r *Reducer) freshID(c canvas.Collection, kind canvas.Kind) canvas.ID {
	for {
		if id := r.IDs.NewID(kind); !c.Has(id) {
			return id
		}
	}
}

func (r *Reducer) add(s State, kind canvas.Kind) State {
	if !slices.Contains(canvas.Kinds, kind) {
		return s
	}
	e := canvas.New(kind, r.freshID(s.Elements, kind))
	elems, err := s.Elements.Append(e)
	if err != nil {
		return s
	}
	s.Elements = elems
	s.Selection = canvas.NewSelection(e.ID)
	return s
}

func (r *Reducer) duplicate(s State) State {
	sources := s.Elements.Selected(s.Selection)
	if len(sources) == 0 {
		return s
	}

	elems := s.Elements
	ids := make([]canvas.ID, 0, len(sources))
	for _, src := range sources {
		dup := src
		dup.ID = r.freshID(elems, src.Kind)
		dup.Rect = dup.Rect.Translate(canvas.DuplicateOffset, canvas.DuplicateOffset)
		next, err := elems.Append(dup)
		if err != nil {
			return s
		}
		elems = next
		ids = append(ids, dup.ID)
	}
	s.Elements = elems
	s.Selection = canvas.NewSelection(ids...)
	return s
}

func deleteSelected(s State) State {
	if s.Selection.Empty() {
		return s
	}
	if s.Session != nil {
		for _, id := range s.Selection.IDs() {
			if s.Session.References(id) {
				s.Session = nil
				break
			}
		}
	}
	s.Elements = s.Elements.Remove(s.Selection)
	s.Selection = s.Selection.Clear()
	return s
}
