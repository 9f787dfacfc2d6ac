package canvas

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/wireframe/pkg/errors"
)

// Property names an editable element attribute. Names match the keys used
// by the property panel, scripts and the JSON export.
type Property string

const (
	PropX               Property = "x"
	PropY               Property = "y"
	PropWidth           Property = "width"
	PropHeight          Property = "height"
	PropBackgroundColor Property = "backgroundColor"
	PropBorderWidth     Property = "borderWidth"
	PropBorderStyle     Property = "borderStyle"
	PropBorderColor     Property = "borderColor"
	PropBorderRadius    Property = "borderRadius"
	PropContent         Property = "content"
	PropFontSize        Property = "fontSize"
	PropColor           Property = "color"
	PropPadding         Property = "padding"
)

// Properties lists every property in panel order.
var Properties = []Property{
	PropX, PropY, PropWidth, PropHeight,
	PropBackgroundColor, PropBorderWidth, PropBorderStyle, PropBorderColor, PropBorderRadius,
	PropContent, PropFontSize, PropColor, PropPadding,
}

// LookupProperty resolves a property name case-insensitively. Snake case
// ("font_size") and kebab case ("font-size") spellings are accepted.
func LookupProperty(name string) (Property, bool) {
	folded := strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(name))
	for _, p := range Properties {
		if strings.EqualFold(string(p), folded) {
			return p, true
		}
	}
	return "", false
}

// Numeric reports whether p holds a number.
func (p Property) Numeric() bool {
	switch p {
	case PropX, PropY, PropWidth, PropHeight, PropBorderWidth, PropBorderRadius, PropFontSize, PropPadding:
		return true
	}
	return false
}

// TextOnly reports whether p applies only to text elements.
func (p Property) TextOnly() bool {
	switch p {
	case PropContent, PropFontSize, PropColor, PropPadding:
		return true
	}
	return false
}

// AppliesTo reports whether p is meaningful for kind k.
func (p Property) AppliesTo(k Kind) bool {
	return !p.TextOnly() || k == KindText
}

// floor returns the smallest value p accepts. Coordinates are unbounded.
func (p Property) floor() float64 {
	switch p {
	case PropWidth, PropHeight:
		return MinSize
	case PropFontSize:
		return 1
	case PropBorderWidth, PropBorderRadius, PropPadding:
		return 0
	}
	return math.Inf(-1)
}

// PropertyValue is a parsed property edit. Number is set for numeric
// properties, Text for all others.
type PropertyValue struct {
	Property Property
	Number   float64
	Text     string
}

// NumberValue builds a numeric edit, clamped to the property's floor.
func NumberValue(p Property, v float64) PropertyValue {
	return PropertyValue{Property: p, Number: math.Max(v, p.floor())}
}

// TextValue builds a string edit. The value is stored verbatim.
func TextValue(p Property, s string) PropertyValue {
	return PropertyValue{Property: p, Text: s}
}

// ParseProperty converts a raw property edit into a typed value.
//
// Numeric properties must parse as finite numbers; values below a
// property's floor are clamped to it (width and height to [MinSize], font
// size to 1, border width, radius and padding to 0). String properties are
// kept exactly as given.
func ParseProperty(name, raw string) (PropertyValue, error) {
	p, ok := LookupProperty(name)
	if !ok {
		return PropertyValue{}, errors.New(errors.ErrCodeInvalidProperty, "unknown property: %q", name)
	}
	if !p.Numeric() {
		return TextValue(p, raw), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return PropertyValue{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "%s must be a number, got %q", p, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return PropertyValue{}, errors.New(errors.ErrCodeInvalidValue, "%s must be finite, got %q", p, raw)
	}
	return NumberValue(p, v), nil
}

// String formats the value the way the property panel shows it.
func (v PropertyValue) String() string {
	if v.Property.Numeric() {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// Apply returns e with the edit applied. Text-only properties leave
// non-text elements unchanged.
func (v PropertyValue) Apply(e Element) Element {
	if !v.Property.AppliesTo(e.Kind) {
		return e
	}
	n := v.Number
	if v.Property.Numeric() {
		n = math.Max(n, v.Property.floor())
	}
	switch v.Property {
	case PropX:
		e.X = n
	case PropY:
		e.Y = n
	case PropWidth:
		e.Width = n
	case PropHeight:
		e.Height = n
	case PropBackgroundColor:
		e.Style.Fill = v.Text
	case PropBorderWidth:
		e.Style.BorderWidth = n
	case PropBorderStyle:
		e.Style.BorderStyle = v.Text
	case PropBorderColor:
		e.Style.BorderColor = v.Text
	case PropBorderRadius:
		e.Style.BorderRadius = n
	case PropContent:
		e.Text.Content = v.Text
	case PropFontSize:
		e.Text.FontSize = n
	case PropColor:
		e.Text.Color = v.Text
	case PropPadding:
		e.Text.Padding = n
	}
	return e
}

// Value returns the current value of p on e. The second result is false
// when p does not apply to e's kind.
func Value(e Element, p Property) (PropertyValue, bool) {
	if !p.AppliesTo(e.Kind) {
		return PropertyValue{}, false
	}
	switch p {
	case PropX:
		return NumberValue(p, e.X), true
	case PropY:
		return NumberValue(p, e.Y), true
	case PropWidth:
		return NumberValue(p, e.Width), true
	case PropHeight:
		return NumberValue(p, e.Height), true
	case PropBackgroundColor:
		return TextValue(p, e.Style.Fill), true
	case PropBorderWidth:
		return NumberValue(p, e.Style.BorderWidth), true
	case PropBorderStyle:
		return TextValue(p, e.Style.BorderStyle), true
	case PropBorderColor:
		return TextValue(p, e.Style.BorderColor), true
	case PropBorderRadius:
		return NumberValue(p, e.Style.BorderRadius), true
	case PropContent:
		return TextValue(p, e.Text.Content), true
	case PropFontSize:
		return NumberValue(p, e.Text.FontSize), true
	case PropColor:
		return TextValue(p, e.Text.Color), true
	case PropPadding:
		return NumberValue(p, e.Text.Padding), true
	}
	return PropertyValue{}, false
}
