package editor

import "strings"

// KeyEvent is a key press reported by the host. Key is the key name
// ("delete", "escape", "d"); Meta is the Cmd key on macOS.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// KeyCommand maps a key press to the event it triggers in s:
//
//	Delete          delete the selection (only when something is selected)
//	Ctrl/Cmd+D      duplicate the selection
//	Escape          clear the selection
//
// The second result reports whether the host should suppress its own
// handling of the key. Ctrl/Cmd+D is always claimed, even with nothing
// selected.
func KeyCommand(s State, k KeyEvent) (Event, bool) {
	switch key := strings.ToLower(k.Key); {
	case key == "delete":
		if s.Selection.Empty() {
			return nil, false
		}
		return DeleteSelected{}, true
	case key == "d" && (k.Ctrl || k.Meta):
		return DuplicateSelected{}, true
	case key == "escape" || key == "esc":
		return ClearSelection{}, true
	}
	return nil, false
}
