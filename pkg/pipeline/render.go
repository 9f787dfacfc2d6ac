package pipeline

import (
	"context"
	"math"

	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/render"
	"github.com/matzehuels/wireframe/pkg/render/dot"
	"github.com/matzehuels/wireframe/pkg/render/sink"
	"github.com/matzehuels/wireframe/pkg/render/term"
)

// RenderScene produces every requested format without touching a cache.
func RenderScene(ctx context.Context, sc render.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, sc, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, sc render.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		if opts.Engine == EngineGraphviz {
			return dot.RenderSVG(ctx, toDOT(sc, opts))
		}
		return sink.RenderSVG(sc, svgOptions(opts)...), nil
	case FormatPNG:
		if opts.Engine == EngineGraphviz {
			return dot.RenderPNG(ctx, toDOT(sc, opts))
		}
		return sink.RenderPNG(sc, pngOptions(opts)...)
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONSize(opts.Width, opts.Height)}
		if opts.Selection {
			jsonOpts = append(jsonOpts, sink.WithJSONSelection())
		}
		return sink.RenderJSON(sc, jsonOpts...)
	case FormatDOT:
		return []byte(toDOT(sc, opts)), nil
	case FormatText:
		return []byte(renderText(sc, opts) + "\n"), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithSize(opts.Width, opts.Height)}
	if opts.Grid {
		svgOpts = append(svgOpts, sink.WithGrid())
	}
	if opts.Selection {
		svgOpts = append(svgOpts, sink.WithSelection())
	}
	if opts.EmbedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}
	return svgOpts
}

func pngOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale), sink.WithPNGSize(opts.Width, opts.Height)}
	if opts.Grid {
		pngOpts = append(pngOpts, sink.WithPNGGrid())
	}
	if opts.Selection {
		pngOpts = append(pngOpts, sink.WithPNGSelection())
	}
	return pngOpts
}

func toDOT(sc render.Scene, opts Options) string {
	return dot.ToDOT(sc, dot.Options{Detailed: opts.Detailed, Selection: opts.Selection})
}

// renderText draws the whole frame as plain terminal cells.
func renderText(sc render.Scene, opts Options) string {
	if !opts.Selection {
		sc.Selection = sc.Selection.Clear()
	}
	if !opts.Grid {
		sc.Grid = 0
	}
	f := sc.Frame(opts.Width, opts.Height)
	v := term.Fit(sc, 0, 0)
	cols := int(math.Ceil((f.Right() - v.Origin.X) / term.CellWidth))
	rows := int(math.Ceil((f.Bottom() - v.Origin.Y) / term.CellHeight))
	return term.Plain(sc, v.Resize(cols, rows))
}
