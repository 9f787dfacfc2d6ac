package io

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Step is one scripted event. Name selects the event; the remaining
// fields are read only when that event uses them.
type Step struct {
	Name     string   `toml:"event"`
	ID       string   `toml:"id,omitempty"`
	Kind     string   `toml:"kind,omitempty"`
	Handle   string   `toml:"handle,omitempty"`
	X        *float64 `toml:"x,omitempty"`
	Y        *float64 `toml:"y,omitempty"`
	Shift    bool     `toml:"shift,omitempty"`
	Mode     string   `toml:"mode,omitempty"`
	Property string   `toml:"property,omitempty"`
	Value    any      `toml:"value,omitempty"`
	Enabled  *bool    `toml:"enabled,omitempty"`
	Color    string   `toml:"color,omitempty"`
}

// Event converts the step into the editor event it names.
func (s Step) Event() (editor.Event, error) {
	switch s.Name {
	case "pointer_down":
		id, err := s.id()
		if err != nil {
			return nil, err
		}
		pos, err := s.pos()
		if err != nil {
			return nil, err
		}
		return editor.PointerDown{ID: id, Pos: pos, Shift: s.Shift}, nil
	case "handle_down":
		id, err := s.id()
		if err != nil {
			return nil, err
		}
		h, err := canvas.ParseHandle(s.Handle)
		if err != nil {
			return nil, err
		}
		pos, err := s.pos()
		if err != nil {
			return nil, err
		}
		return editor.HandleDown{ID: id, Handle: h, Pos: pos}, nil
	case "pointer_move":
		pos, err := s.pos()
		if err != nil {
			return nil, err
		}
		return editor.PointerMove{Pos: pos}, nil
	case "canvas_down":
		return editor.CanvasDown{}, nil
	case "pointer_up":
		return editor.PointerUp{}, nil
	case "cancel":
		return editor.Cancel{}, nil
	case "clear":
		return editor.ClearSelection{}, nil
	case "select", "toggle":
		id, err := s.id()
		if err != nil {
			return nil, err
		}
		if s.Name == "toggle" {
			return editor.Toggle{ID: id}, nil
		}
		return editor.Select{ID: id}, nil
	case "add":
		k, err := canvas.ParseKind(s.Kind)
		if err != nil {
			return nil, err
		}
		return editor.AddElement{Kind: k}, nil
	case "duplicate":
		return editor.DuplicateSelected{}, nil
	case "delete":
		return editor.DeleteSelected{}, nil
	case "bring_forward":
		return editor.BringForward{}, nil
	case "send_backward":
		return editor.SendBackward{}, nil
	case "align":
		m, err := canvas.ParseAlignMode(s.Mode)
		if err != nil {
			return nil, err
		}
		return editor.Align{Mode: m}, nil
	case "set":
		raw, err := rawValue(s.Value)
		if err != nil {
			return nil, err
		}
		v, err := canvas.ParseProperty(s.Property, raw)
		if err != nil {
			return nil, err
		}
		return editor.UpdateProperty{Value: v}, nil
	case "snap":
		if s.Enabled == nil {
			return nil, errors.New(errors.ErrCodeInvalidScript, "snap needs enabled")
		}
		return editor.SetSnap{Enabled: *s.Enabled}, nil
	case "background":
		if s.Color == "" {
			return nil, errors.New(errors.ErrCodeInvalidScript, "background needs color")
		}
		return editor.SetBackground{Color: s.Color}, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidScript, "missing event name")
	}
	return nil, errors.New(errors.ErrCodeInvalidScript, "unknown event: %q", s.Name)
}

func (s Step) id() (canvas.ID, error) {
	if s.ID == "" {
		return "", errors.New(errors.ErrCodeInvalidScript, "%s needs id", s.Name)
	}
	return canvas.ID(s.ID), nil
}

func (s Step) pos() (canvas.Point, error) {
	if s.X == nil || s.Y == nil {
		return canvas.Point{}, errors.New(errors.ErrCodeInvalidScript, "%s needs x and y", s.Name)
	}
	return canvas.Point{X: *s.X, Y: *s.Y}, nil
}

// rawValue renders a decoded TOML value the way it would have been typed
// into the property panel.
func rawValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", errors.New(errors.ErrCodeInvalidScript, "set needs value")
	}
	return "", errors.New(errors.ErrCodeInvalidScript, "value must be a string or number, got %s", fmt.Sprintf("%T", v))
}

// StepOf converts an event back into its script form. The second result
// is false for event types the format does not know.
func StepOf(ev editor.Event) (Step, bool) {
	st := Step{Name: ev.Name()}
	switch ev := ev.(type) {
	case editor.PointerDown:
		st.ID, st.Shift = string(ev.ID), ev.Shift
		st.X, st.Y = ptr(ev.Pos.X), ptr(ev.Pos.Y)
	case editor.HandleDown:
		st.ID, st.Handle = string(ev.ID), string(ev.Handle)
		st.X, st.Y = ptr(ev.Pos.X), ptr(ev.Pos.Y)
	case editor.PointerMove:
		st.X, st.Y = ptr(ev.Pos.X), ptr(ev.Pos.Y)
	case editor.Select:
		st.ID = string(ev.ID)
	case editor.Toggle:
		st.ID = string(ev.ID)
	case editor.AddElement:
		st.Kind = string(ev.Kind)
	case editor.Align:
		st.Mode = string(ev.Mode)
	case editor.UpdateProperty:
		st.Property = string(ev.Value.Property)
		if ev.Value.Property.Numeric() {
			st.Value = ev.Value.Number
		} else {
			st.Value = ev.Value.Text
		}
	case editor.SetSnap:
		st.Enabled = ptr(ev.Enabled)
	case editor.SetBackground:
		st.Color = ev.Color
	case editor.CanvasDown, editor.PointerUp, editor.Cancel, editor.ClearSelection,
		editor.DuplicateSelected, editor.DeleteSelected, editor.BringForward, editor.SendBackward:
	default:
		return Step{}, false
	}
	return st, true
}

func ptr[T any](v T) *T { return &v }
