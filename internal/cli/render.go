package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/errors"
	wfio "github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/pipeline"
)

// renderCommand creates the render command for replaying a script.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "render [script.toml]",
		Short: "Replay an editing script and render the canvas",
		Long: `Replay an editing script and render the resulting canvas.

The script is a TOML file of [[step]] tables, one per editor event, as
written by 'wireframe edit --record'. Steps are replayed through a fresh
editor, so element ids are numbered deterministically (rectangle-1, text-2).

Formats: svg (default), png, json, dot, txt. With a single format, -o names
the output file ("-" writes to stdout). With several, -o is a base path and
each format gets its own extension.

Results are cached locally; unchanged canvases are served from the cache.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Config is loaded by the root PersistentPreRunE; flags the user
			// did not set fall back to it.
			applyDefaults(cmd, &opts, c.renderOptions())
			if f := parseFormats(formatsStr); f != nil {
				opts.Formats = f
			}
			return opts.ValidateAndSetDefaults()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, png, json, dot, txt (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached artifacts exist")

	// Render flags
	cmd.Flags().StringVar(&opts.Engine, "engine", "", "svg/png engine: native (default), graphviz")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "minimum frame width in canvas units")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "minimum frame height in canvas units")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.Selection, "selection", false, "draw the selection outline and resize handles")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw the snap grid when snapping is enabled")
	cmd.Flags().BoolVar(&opts.EmbedFont, "embed-font", false, "embed the text font in SVG output")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include geometry in DOT labels")

	cmd.ValidArgsFunction = completeScripts
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("engine", completeEngines)

	return cmd
}

// applyDefaults fills the options the user left unset from base, which
// carries the configured values.
func applyDefaults(cmd *cobra.Command, opts *pipeline.Options, base pipeline.Options) {
	changed := cmd.Flags().Changed
	opts.Config = base.Config
	opts.Logger = base.Logger
	opts.Formats = base.Formats
	if !changed("engine") {
		opts.Engine = base.Engine
	}
	if !changed("width") {
		opts.Width = base.Width
	}
	if !changed("height") {
		opts.Height = base.Height
	}
	if !changed("scale") {
		opts.Scale = base.Scale
	}
}

// runRender loads the script, replays it and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Loading %s...", filepath.Base(input)))
	spinner.Start()
	defer spinner.Stop()

	script, err := wfio.ReadScript(input)
	if err != nil {
		spinner.StopWithError("Could not load script")
		return fmt.Errorf("load script %s: %w", input, err)
	}
	logger.Debugf("Loaded %s: %d steps", input, len(script.Steps))

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner.SetMessage(fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	result, err := runner.Execute(ctx, script, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.StopWithError("Render cancelled")
		} else {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", plural(len(opts.Formats), "format")))

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		stats:     result.Stats,
		cacheHit:  result.CacheInfo.RenderHit,
		stdout:    os.Stdout,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles what writeArtifacts needs to place and
// report rendered outputs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // script path, used to derive output names
	output    string // -o value
	stats     pipeline.Stats
	cacheHit  bool
	stdout    io.Writer
}

// writeArtifacts writes each format to its own file, or the single
// requested format to stdout when output is "-".
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(p.formats))
		}
		_, err := p.stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := make([]string, 0, len(p.formats))
	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "no %s artifact was rendered", format)
		}
		path := base + "." + format
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", p.input)
	printStats(p.stats.Elements, p.stats.Steps, p.cacheHit)
	for _, path := range paths {
		printFile(path)
	}
	printNextStep("Keep editing", fmt.Sprintf("%s edit --script %s", appName, p.input))
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
