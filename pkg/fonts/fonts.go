// Package fonts provides the embedded font used by the raster and SVG
// renderers.
//
// The Go Regular TrueType font ships with golang.org/x/image, so it is
// compiled into the binary and available without any system fonts.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// RegularTTF returns the Go Regular TTF font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the TTF font data as a base64 string for
// embedding in SVG @font-face rules. The result is cached after first
// computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Parsed font source, shared by every raster render.
var (
	source     *text.FontSource
	sourceErr  error
	sourceOnce sync.Once
)

// Regular returns the parsed Go Regular font source. Parsing happens once;
// the source is shared and must not be closed by callers.
func Regular() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return source, sourceErr
}

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers that ignore the
// embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`
