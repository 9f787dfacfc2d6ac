package editor_test

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
)

func ExampleEditor() {
	ed := editor.New(editor.WithIDSource(&editor.Sequence{}))

	ed.Dispatch(editor.AddElement{Kind: canvas.KindRectangle})
	ed.Dispatch(editor.PointerDown{ID: "rectangle-1", Pos: canvas.Point{X: 60, Y: 60}})
	ed.Dispatch(editor.PointerMove{Pos: canvas.Point{X: 90, Y: 100}})
	ed.Dispatch(editor.PointerUp{})

	e, _ := ed.State().Elements.Get("rectangle-1")
	fmt.Println(e.X, e.Y, ed.State().Mode())
	// Output:
	// 80 90 idle
}

func ExampleEditor_HandleKey() {
	ed := editor.New(editor.WithIDSource(&editor.Sequence{}))
	ed.Dispatch(editor.AddElement{Kind: canvas.KindCircle})

	handled := ed.HandleKey(editor.KeyEvent{Key: "d", Ctrl: true})
	fmt.Println(handled, ed.State().Elements.IDs(), ed.State().Selection.IDs())
	// Output:
	// true [circle-1 circle-2] [circle-2]
}
