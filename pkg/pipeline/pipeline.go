// Package pipeline replays editor scripts and renders the resulting canvas.
//
// The CLI render command and the terminal editor's export share this
// package so both produce identical artifacts for identical canvases.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Replay: feed a script's events through a fresh editor that numbers
//     new elements with an [editor.Sequence]
//  2. Render: produce each requested format from the final scene
//
// Rendered artifacts are cached under a hash of the scene plus the render
// options, so re-running an unchanged script is a cache lookup.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, script, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Render an existing scene directly:
//
//	artifacts, err := runner.Render(ctx, render.SceneOf(ed.State()), opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// DefaultWidth is the minimum frame width in canvas units.
	DefaultWidth = render.DefaultMinWidth

	// DefaultHeight is the minimum frame height in canvas units.
	DefaultHeight = render.DefaultMinHeight

	// DefaultEngine draws shapes natively.
	DefaultEngine = EngineNative

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatText: true,
}

// Engines choose who draws the SVG and PNG formats.
const (
	EngineNative   = "native"   // pkg/render/sink
	EngineGraphviz = "graphviz" // neato over the DOT export
)

// ValidEngines is the set of supported render engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures replay and rendering.
type Options struct {
	// Replay options
	Config editor.Config `json:"-"` // base settings; script settings override

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Engine    string   `json:"engine,omitempty"`
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Selection bool     `json:"selection,omitempty"` // draw the selection outline and handles
	Grid      bool     `json:"grid,omitempty"`      // draw the snap grid when snapping is on
	EmbedFont bool     `json:"embed_font,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"` // DOT labels carry geometry
	Refresh   bool     `json:"refresh,omitempty"`  // bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// State is the editor state after replay.
	State editor.State

	// Scene is the rendered snapshot of State.
	Scene render.Scene

	// SceneHash is the content hash the artifact keys derive from.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Steps      int
	Elements   int
	ReplayTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // every artifact came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	return errors.ValidateFormats(formats, ValidFormats)
}

// ValidateEngine checks that an engine is supported.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the render
// options. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.Scale < 0 || o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidValue, "scale, width and height must not be negative")
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Config == (editor.Config{}) {
		o.Config = editor.DefaultConfig()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns the cache key options for one format. Options a
// format ignores are left out so they do not split its cache entries.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatJSON:
		k.Selection = o.Selection
		k.Width, k.Height = o.Width, o.Height
	case FormatDOT:
		k.Selection = o.Selection
		k.Detailed = o.Detailed
	case FormatText:
		k.Selection = o.Selection
		k.Grid = o.Grid
		k.Width, k.Height = o.Width, o.Height
	case FormatSVG, FormatPNG:
		k.Selection = o.Selection
		if o.Engine == EngineGraphviz {
			k.Format = format + "+" + EngineGraphviz
			k.Detailed = o.Detailed
			break
		}
		k.Grid = o.Grid
		k.Width, k.Height = o.Width, o.Height
		if format == FormatPNG {
			k.Scale = o.Scale
		} else {
			k.EmbedFont = o.EmbedFont
		}
	}
	return k
}
