package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// paletteCommand is one entry of the ":" command palette. Names have one
// or two words; arguments follow the name.
type paletteCommand struct {
	name  string
	usage string // argument hint, empty when the command takes none
	run   func(m *editorModel, args []string) (tea.Cmd, error)
}

// words reports how many input fields the name consumes.
func (c paletteCommand) words() int { return strings.Count(c.name, " ") + 1 }

// paletteCommands lists every command in help order.
var paletteCommands = buildPaletteCommands()

func buildPaletteCommands() []paletteCommand {
	cmds := []paletteCommand{
		{name: "add", usage: "<rectangle|text|circle>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			if len(args) != 1 {
				return nil, usageError("add <rectangle|text|circle>")
			}
			k, err := canvas.ParseKind(args[0])
			if err != nil {
				return nil, err
			}
			m.dispatch(editor.AddElement{Kind: k})
			return nil, nil
		}},
		{name: "delete", run: simple(editor.DeleteSelected{})},
		{name: "duplicate", run: simple(editor.DuplicateSelected{})},
		{name: "clear", run: simple(editor.ClearSelection{})},
		{name: "select", usage: "<id>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			id, err := m.existing(args)
			if err != nil {
				return nil, err
			}
			m.dispatch(editor.Select{ID: id})
			return nil, nil
		}},
		{name: "toggle", usage: "<id>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			id, err := m.existing(args)
			if err != nil {
				return nil, err
			}
			m.dispatch(editor.Toggle{ID: id})
			return nil, nil
		}},
		{name: "bring forward", run: simple(editor.BringForward{})},
		{name: "send backward", run: simple(editor.SendBackward{})},
		{name: "set", usage: "<property> <value>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			if len(args) < 2 {
				return nil, usageError("set <property> <value>")
			}
			v, err := canvas.ParseProperty(args[0], strings.Join(args[1:], " "))
			if err != nil {
				return nil, err
			}
			m.dispatch(editor.UpdateProperty{Value: v})
			return nil, nil
		}},
		{name: "background", usage: "<color>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			if len(args) != 1 {
				return nil, usageError("background <color>")
			}
			m.dispatch(editor.SetBackground{Color: args[0]})
			return nil, nil
		}},
		{name: "snap", usage: "[on|off]", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			enabled := !m.ed.State().Config.SnapToGrid
			if len(args) == 1 {
				switch strings.ToLower(args[0]) {
				case "on", "true", "1":
					enabled = true
				case "off", "false", "0":
					enabled = false
				default:
					return nil, usageError("snap [on|off]")
				}
			}
			m.dispatch(editor.SetSnap{Enabled: enabled})
			return nil, nil
		}},
		{name: "export", usage: "<path> [formats]", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			return m.export(args)
		}},
		{name: "save", usage: "<path>", run: func(m *editorModel, args []string) (tea.Cmd, error) {
			return m.save(args)
		}},
		{name: "quit", run: func(m *editorModel, _ []string) (tea.Cmd, error) {
			return tea.Quit, nil
		}},
	}
	for _, mode := range canvas.AlignModes {
		cmds = append(cmds, paletteCommand{
			name: "align " + string(mode),
			run:  simple(editor.Align{Mode: mode}),
		})
	}
	return cmds
}

func simple(ev editor.Event) func(*editorModel, []string) (tea.Cmd, error) {
	return func(m *editorModel, args []string) (tea.Cmd, error) {
		if len(args) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s takes no arguments", ev.Name())
		}
		m.dispatch(ev)
		return nil, nil
	}
}

func usageError(usage string) error {
	return errors.New(errors.ErrCodeInvalidInput, "usage: %s", usage)
}

// resolveCommand finds the command a palette line names and returns it
// with the remaining fields as arguments. Names are compared with case,
// spaces, dashes and underscores folded away, and misspellings within a
// quarter of the name's length resolve to the closest command, so
// "alignleft" and "Bring-Forwrd" both work.
func resolveCommand(line string) (paletteCommand, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return paletteCommand{}, nil, errors.New(errors.ErrCodeInvalidInput, "empty command")
	}

	var (
		best     paletteCommand
		bestArgs []string
		bestDist = -1
	)
	for _, cmd := range paletteCommands {
		name := foldName(cmd.name)
		// A two-word name can be typed as two fields or glued into one.
		for n := min(cmd.words(), len(fields)); n >= 1; n-- {
			d := levenshtein.ComputeDistance(foldName(strings.Join(fields[:n], "")), name)
			if d > len(name)/4 {
				continue
			}
			if bestDist < 0 || d < bestDist {
				best, bestArgs, bestDist = cmd, fields[n:], d
			}
		}
	}
	if bestDist < 0 {
		return paletteCommand{}, nil, errors.New(errors.ErrCodeNotFound, "unknown command: %q", fields[0])
	}
	return best, bestArgs, nil
}

// foldName lowercases s and drops spaces, dashes and underscores.
func foldName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
