package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/render"
)

func testScene(t *testing.T) render.Scene {
	t.Helper()
	ed := editor.New(editor.WithIDSource(&editor.Sequence{}))
	ed.Dispatch(editor.AddElement{Kind: canvas.KindRectangle})
	ed.Dispatch(editor.AddElement{Kind: canvas.KindCircle})
	ed.Dispatch(editor.AddElement{Kind: canvas.KindText})
	return render.SceneOf(ed.State())
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testScene(t), Options{})

	if !strings.HasPrefix(dot, "graph wireframe {\n") {
		t.Errorf("unexpected header: %.40s", dot)
	}
	tests := []string{
		// rectangle center (150,100), frame height 600 -> y 500
		`"rectangle-1" [label="rectangle-1", shape=box, pos="150,500!"`,
		`"circle-2" [label="circle-2", shape=ellipse`,
		`"text-3" [label="Hello World", shape=plaintext`,
		`bgcolor="#f0f2f5"`,
	}
	for _, want := range tests {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if strings.Contains(dot, render.SelectionColor) {
		t.Error("selection drawn without Options.Selection")
	}
}

func TestToDOTSelectionAndDetail(t *testing.T) {
	dot := ToDOT(testScene(t), Options{Selection: true, Detailed: true})
	if !strings.Contains(dot, `color="`+render.SelectionColor+`"`) {
		t.Error("selected text element not outlined")
	}
	if !strings.Contains(dot, `label="rectangle-1\n50,50 200x100"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTPaintOrder(t *testing.T) {
	sc := testScene(t)
	sc.Selection = canvas.NewSelection("rectangle-1")
	dot := ToDOT(sc, Options{})
	if strings.Index(dot, `"rectangle-1"`) < strings.Index(dot, `"text-3"`) {
		t.Error("selected element not emitted last")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte("<svg></svg>")
	if string(normalizeViewBox(plain)) != "<svg></svg>" {
		t.Error("normalizeViewBox changed SVG without viewBox")
	}
}
