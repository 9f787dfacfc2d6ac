package editor

import "github.com/matzehuels/wireframe/pkg/canvas"

// Config holds the editor settings that affect interaction and rendering.
type Config struct {
	SnapToGrid bool
	GridSize   float64 // snap pitch, used only while dragging
	Background string  // canvas background color
}

// DefaultConfig returns snapping disabled on a 10 unit grid and the default
// canvas background.
func DefaultConfig() Config {
	return Config{
		GridSize:   canvas.DefaultGridSize,
		Background: canvas.DefaultBackground,
	}
}

// State is a snapshot of the editor. Session is nil while idle.
type State struct {
	Elements  canvas.Collection
	Selection canvas.Selection
	Session   Session
	Config    Config
}

// NewState returns an empty canvas with the given settings.
func NewState(cfg Config) State {
	if cfg.GridSize <= 0 {
		cfg.GridSize = canvas.DefaultGridSize
	}
	if cfg.Background == "" {
		cfg.Background = canvas.DefaultBackground
	}
	return State{Config: cfg}
}

// Mode reports the interaction state.
func (s State) Mode() Mode {
	if s.Session == nil {
		return ModeIdle
	}
	return s.Session.Mode()
}

// SelectedElements returns the selected elements in z-order.
func (s State) SelectedElements() []canvas.Element {
	return s.Elements.Selected(s.Selection)
}

// ShowHandles reports whether resize handles should be drawn, which is
// only when exactly one element is selected.
func (s State) ShowHandles() bool {
	return s.Selection.Len() == 1
}
