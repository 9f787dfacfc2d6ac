package canvas

// Default attribute values for new elements.
const (
	DefaultBorderColor = "#ccc"
	DefaultBorderStyle = "solid"
	DefaultTextContent = "Hello World"
	DefaultBackground  = "#f0f2f5"

	// DuplicateOffset is how far a duplicate is shifted from its source on
	// both axes.
	DuplicateOffset = 20.0
)

// New returns an element of the given kind with its default geometry and
// styling. Unknown kinds fall back to the rectangle defaults.
func New(kind Kind, id ID) Element {
	switch kind {
	case KindText:
		return Element{
			ID:   id,
			Kind: KindText,
			Rect: Rect{X: 100, Y: 120, Width: 150, Height: 40},
			Style: Style{
				Fill:        "transparent",
				BorderWidth: 0,
				BorderStyle: DefaultBorderStyle,
				BorderColor: DefaultBorderColor,
			},
			Text: TextStyle{
				Content:  DefaultTextContent,
				FontSize: 16,
				Color:    "#000000",
				Padding:  5,
			},
		}
	case KindCircle:
		return Element{
			ID:   id,
			Kind: KindCircle,
			Rect: Rect{X: 150, Y: 150, Width: 100, Height: 100},
			Style: Style{
				Fill:         "#ffeb3b",
				BorderWidth:  1,
				BorderStyle:  DefaultBorderStyle,
				BorderColor:  DefaultBorderColor,
				BorderRadius: 50,
			},
		}
	default:
		return Element{
			ID:   id,
			Kind: KindRectangle,
			Rect: Rect{X: 50, Y: 50, Width: 200, Height: 100},
			Style: Style{
				Fill:        "#e0e0e0",
				BorderWidth: 1,
				BorderStyle: DefaultBorderStyle,
				BorderColor: DefaultBorderColor,
			},
		}
	}
}
