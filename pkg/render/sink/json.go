package sink

import (
	"encoding/json"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	selection bool
	minW      float64
	minH      float64
}

// WithJSONSelection records the selected ids in the output.
func WithJSONSelection() JSONOption { return func(r *jsonRenderer) { r.selection = true } }

// WithJSONSize sets the minimum canvas size recorded in the output.
func WithJSONSize(w, h float64) JSONOption {
	return func(r *jsonRenderer) { r.minW, r.minH = w, h }
}

type jsonOutput struct {
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Background string        `json:"background"`
	Grid       float64       `json:"grid,omitempty"`
	Selected   []string      `json:"selected,omitempty"`
	Elements   []jsonElement `json:"elements"`
}

// jsonElement uses the property names accepted by [canvas.ParseProperty].
type jsonElement struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	BackgroundColor string   `json:"backgroundColor"`
	BorderWidth     float64  `json:"borderWidth"`
	BorderStyle     string   `json:"borderStyle"`
	BorderColor     string   `json:"borderColor"`
	BorderRadius    float64  `json:"borderRadius"`
	Content         *string  `json:"content,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	Color           *string  `json:"color,omitempty"`
	Padding         *float64 `json:"padding,omitempty"`
}

// RenderJSON renders the scene's elements in z-order as indented JSON.
func RenderJSON(sc render.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{minW: render.DefaultMinWidth, minH: render.DefaultMinHeight}
	for _, opt := range opts {
		opt(&r)
	}

	f := sc.Frame(r.minW, r.minH)
	out := jsonOutput{
		Width:      f.Width,
		Height:     f.Height,
		Background: sc.Background,
		Grid:       sc.Grid,
		Elements:   make([]jsonElement, 0, sc.Elements.Len()),
	}
	for _, e := range sc.Elements.Elements() {
		out.Elements = append(out.Elements, toJSONElement(e))
	}
	if r.selection {
		for _, id := range sc.Selection.IDs() {
			out.Selected = append(out.Selected, string(id))
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONElement(e canvas.Element) jsonElement {
	je := jsonElement{
		ID:              string(e.ID),
		Type:            string(e.Kind),
		X:               e.X,
		Y:               e.Y,
		Width:           e.Width,
		Height:          e.Height,
		BackgroundColor: e.Style.Fill,
		BorderWidth:     e.Style.BorderWidth,
		BorderStyle:     e.Style.BorderStyle,
		BorderColor:     e.Style.BorderColor,
		BorderRadius:    e.Style.BorderRadius,
	}
	if e.IsText() {
		t := e.Text
		je.Content = &t.Content
		je.FontSize = &t.FontSize
		je.Color = &t.Color
		je.Padding = &t.Padding
	}
	return je
}
