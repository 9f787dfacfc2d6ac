package sink

import (
	"testing"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/render"
)

// testScene builds a scene with one element of each kind; the circle is
// selected and snapping is on.
func testScene(t *testing.T) render.Scene {
	t.Helper()
	ed := editor.New(editor.WithIDSource(&editor.Sequence{}))
	ed.Dispatch(editor.AddElement{Kind: canvas.KindRectangle})
	ed.Dispatch(editor.AddElement{Kind: canvas.KindText})
	ed.Dispatch(editor.AddElement{Kind: canvas.KindCircle})
	ed.Dispatch(editor.SetSnap{Enabled: true})
	return render.SceneOf(ed.State())
}
