package canvas_test

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/canvas"
)

func ExampleResize() {
	start := canvas.Rect{X: 50, Y: 50, Width: 200, Height: 100}

	// Drag the top-left handle past the opposite corner: both axes clamp
	// at the minimum size while the bottom-right corner stays put.
	r := canvas.Resize(start, canvas.HandleNW, 250, 250)
	fmt.Println(r.X, r.Y, r.Width, r.Height)
	fmt.Println(r.Right(), r.Bottom())
	// Output:
	// 230 130 20 20
	// 250 150
}

func ExampleBringForward() {
	c, _ := canvas.NewCollection(
		canvas.New(canvas.KindRectangle, "a"),
		canvas.New(canvas.KindCircle, "b"),
		canvas.New(canvas.KindText, "c"),
	)
	c = canvas.BringForward(c, canvas.NewSelection("a"))
	fmt.Println(c.IDs())
	// Output:
	// [b a c]
}

func ExampleAlign() {
	a := canvas.New(canvas.KindRectangle, "a")
	a.Rect = canvas.Rect{X: 0, Y: 0, Width: 100, Height: 40}
	b := canvas.New(canvas.KindRectangle, "b")
	b.Rect = canvas.Rect{X: 200, Y: 80, Width: 50, Height: 40}

	c, _ := canvas.NewCollection(a, b)
	c = canvas.Align(c, canvas.NewSelection("a", "b"), canvas.AlignCenter)
	for _, e := range c.Elements() {
		fmt.Println(e.ID, e.X)
	}
	// Output:
	// a 87.5
	// b 112.5
}

func ExampleParseProperty() {
	v, err := canvas.ParseProperty("width", "5")
	fmt.Println(v.Property, v, err)

	_, err = canvas.ParseProperty("width", "wide")
	fmt.Println(err != nil)
	// Output:
	// width 20 <nil>
	// true
}
