package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the editor's key bindings. Pointer input comes from the
// mouse; everything else is reachable from here or the palette.
type keyMap struct {
	AddRect   key.Binding
	AddText   key.Binding
	AddCircle key.Binding
	Delete    key.Binding
	Duplicate key.Binding
	Escape    key.Binding
	Forward   key.Binding
	Backward  key.Binding
	Align     key.Binding
	Snap      key.Binding
	Pan       key.Binding
	Fit       key.Binding
	Panel     key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		AddRect:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rectangle")),
		AddText:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text")),
		AddCircle: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "circle")),
		Delete:    key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "delete")),
		Duplicate: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "duplicate")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect")),
		Forward:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "forward")),
		Backward:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "backward")),
		Align:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "align")),
		Snap:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "snap")),
		Pan:       key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "pan")),
		Fit:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit")),
		Panel:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "properties")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddRect, k.AddText, k.AddCircle, k.Delete, k.Palette, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddRect, k.AddText, k.AddCircle},
		{k.Delete, k.Duplicate, k.Escape},
		{k.Forward, k.Backward, k.Align, k.Snap},
		{k.Pan, k.Fit, k.Panel},
		{k.Palette, k.Help, k.Quit},
	}
}
