package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/io"
)

func TestExampleScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example scripts found")
	}

	r := NewRunner(nil, nil, nil)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			script, err := io.ReadScript(path)
			if err != nil {
				t.Fatalf("ReadScript: %v", err)
			}
			res, err := r.Execute(context.Background(), script, Options{Formats: []string{FormatSVG, FormatJSON, FormatText}})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if res.State.Elements.Len() == 0 {
				t.Error("script produced an empty canvas")
			}
			if res.State.Session != nil {
				t.Error("script ends mid-gesture")
			}
			for _, f := range []string{FormatSVG, FormatJSON, FormatText} {
				if len(res.Artifacts[f]) == 0 {
					t.Errorf("empty %s artifact", f)
				}
			}
		})
	}
}

func TestLoginExampleLayout(t *testing.T) {
	script, err := io.ReadScript(filepath.Join("..", "..", "examples", "login.toml"))
	if err != nil {
		t.Fatal(err)
	}
	state, err := NewRunner(nil, nil, nil).Replay(context.Background(), script, editor.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	want := []canvas.ID{"rectangle-1", "text-2", "rectangle-3", "rectangle-4", "rectangle-5"}
	if got := state.Elements.IDs(); len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	// The button is right-aligned with the input fields.
	for _, id := range []canvas.ID{"rectangle-3", "rectangle-4", "rectangle-5"} {
		e, _ := state.Elements.Get(id)
		if e.Right() != 340 {
			t.Errorf("%s right edge = %v, want 340", id, e.Right())
		}
	}
	// Grabbed 10 units inside its top-left corner at (60, 60) and released
	// at (110, 250).
	button, _ := state.Elements.Get("rectangle-5")
	if button.Y != 240 {
		t.Errorf("button y = %v, want 240", button.Y)
	}
	if !state.Selection.Empty() {
		t.Errorf("selection = %v, want empty", state.Selection.IDs())
	}
}
