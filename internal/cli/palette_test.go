package cli

import (
	"slices"
	"testing"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/errors"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		line string
		want string
		args []string
	}{
		{"add rect", "add", []string{"rect"}},
		{"delete", "delete", nil},
		{"Delete", "delete", nil},
		{"delet", "delete", nil},
		{"dupliacte", "duplicate", nil},
		{"align left", "align left", nil},
		{"alignleft", "align left", nil},
		{"Align-Middle", "align middle", nil},
		{"align centre", "align center", nil},
		{"bring-forwrd", "bring forward", nil},
		{"send_backward", "send backward", nil},
		{"set width 120", "set", []string{"width", "120"}},
		{"set content Sign up", "set", []string{"content", "Sign", "up"}},
		{"select rectangle-1", "select", []string{"rectangle-1"}},
		{"snap off", "snap", []string{"off"}},
		{"export out.svg png,svg", "export", []string{"out.svg", "png,svg"}},
		{"  quit  ", "quit", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args, err := resolveCommand(tt.line)
			if err != nil {
				t.Fatalf("resolveCommand(%q): %v", tt.line, err)
			}
			if cmd.name != tt.want {
				t.Errorf("command = %q, want %q", cmd.name, tt.want)
			}
			if len(args) == 0 {
				args = nil
			}
			if !slices.Equal(args, tt.args) {
				t.Errorf("args = %q, want %q", args, tt.args)
			}
		})
	}
}

func TestResolveCommandUnknown(t *testing.T) {
	for _, line := range []string{"", "   ", "frobnicate", "ad rect", "xyz"} {
		if _, _, err := resolveCommand(line); err == nil {
			t.Errorf("resolveCommand(%q) should fail", line)
		}
	}
}

func TestPaletteCommandsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range paletteCommands {
		name := foldName(cmd.name)
		if seen[name] {
			t.Errorf("duplicate palette command %q", cmd.name)
		}
		seen[name] = true
		if cmd.run == nil {
			t.Errorf("palette command %q has no action", cmd.name)
		}
	}
}

func TestExecuteCommands(t *testing.T) {
	m := newTestModel(t)

	for _, line := range []string{"add rect", "add text", "select rectangle-1", "toggle text-2"} {
		if m.execute(line); m.err != nil {
			t.Fatalf("%s: %v", line, m.err)
		}
	}
	st := m.ed.State()
	if st.Selection.Len() != 2 {
		t.Fatalf("selection = %v, want both elements", st.Selection.IDs())
	}

	m.execute("align top")
	m.execute("set width 120")
	for _, e := range st.Elements.Elements() {
		got := element(t, m, e.ID)
		if got.Y != 50 {
			t.Errorf("%s: y = %v, want 50 after align top", e.ID, got.Y)
		}
		if got.Width != 120 {
			t.Errorf("%s: width = %v, want 120", e.ID, got.Width)
		}
	}

	m.execute("bring forward")
	m.execute("snap on")
	if !m.ed.State().Config.SnapToGrid {
		t.Error("snap on should enable snapping")
	}
	m.execute("background #ffffff")
	if got := m.ed.State().Config.Background; got != "#ffffff" {
		t.Errorf("background = %q", got)
	}

	m.execute("duplicate")
	if n := m.ed.State().Elements.Len(); n != 4 {
		t.Errorf("elements after duplicate = %d, want 4", n)
	}
	m.execute("delete")
	if n := m.ed.State().Elements.Len(); n != 2 {
		t.Errorf("elements after delete = %d, want 2", n)
	}
	m.execute("clear")
	if !m.ed.State().Selection.Empty() {
		t.Error("clear should empty the selection")
	}
}

func TestExecuteErrorsLeaveStateAlone(t *testing.T) {
	m := newTestModel(t)
	m.execute("add rect")
	before := m.ed.State()

	tests := []struct {
		line string
		code errors.Code
	}{
		{"set width abc", errors.ErrCodeInvalidValue},
		{"set colour red", errors.ErrCodeInvalidProperty},
		{"set width", errors.ErrCodeInvalidInput},
		{"add hexagon", errors.ErrCodeInvalidKind},
		{"select nope", errors.ErrCodeNotFound},
		{"delete now", errors.ErrCodeInvalidInput},
		{"snap maybe", errors.ErrCodeInvalidInput},
		{"export", errors.ErrCodeInvalidInput},
		{"export ../escape.svg", errors.ErrCodeInvalidPath},
		{"export out.svg gif", errors.ErrCodeInvalidFormat},
		{"frobnicate", errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if cmd := m.execute(tt.line); cmd != nil {
				t.Error("a failed command should not schedule work")
			}
			if !errors.Is(m.err, tt.code) {
				t.Errorf("err = %v, want code %s", m.err, tt.code)
			}
			after := m.ed.State()
			if !slices.Equal(after.Elements.Elements(), before.Elements.Elements()) {
				t.Error("elements changed after a failed command")
			}
			if !after.Selection.Equal(before.Selection) {
				t.Error("selection changed after a failed command")
			}
		})
	}
}

func TestSetSkipsTextOnlyProperties(t *testing.T) {
	m := newTestModel(t)
	m.execute("add rect")
	m.execute("set fontSize 24")
	if m.err != nil {
		t.Fatalf("set fontSize: %v", m.err)
	}
	if got := element(t, m, "rectangle-1"); got.Text != (canvas.TextStyle{}) {
		t.Errorf("rectangle text style = %+v, want zero", got.Text)
	}
}
