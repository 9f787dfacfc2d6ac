package render

import "strings"

// namedColors covers the CSS keywords the property panel offers. Anything
// else must be a hex color.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"gray":   "#808080",
	"grey":   "#808080",
	"orange": "#ffa500",
}

// IsTransparent reports whether a fill paints nothing.
func IsTransparent(color string) bool {
	c := strings.ToLower(strings.TrimSpace(color))
	return c == "" || c == "transparent" || c == "none"
}

// NormalizeColor converts a CSS color string to lowercase "#rrggbb" or
// "#rrggbbaa" form. The second result is false for transparent colors and
// for strings that are neither a known keyword nor a 3, 4, 6 or 8 digit hex
// color.
func NormalizeColor(s string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(s))
	if IsTransparent(c) {
		return "", false
	}
	if hex, ok := namedColors[c]; ok {
		return hex, true
	}
	hex := strings.TrimPrefix(c, "#")
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		b.WriteByte('#')
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String(), true
	case 6, 8:
		return "#" + hex, true
	}
	return "", false
}
