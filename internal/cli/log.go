// Package cli implements the wireframe command-line interface.
//
// This package provides the interactive terminal editor, headless rendering
// of recorded editing scripts, and management of the artifact cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - edit: Open the mouse-driven canvas editor in the terminal
//   - render: Replay a TOML script and write SVG, PNG, JSON, DOT or text
//   - cache: Manage the rendered artifact cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and engine events (sessions, commands,
// replay, render and cache traffic) reach the logger through observability
// hooks registered at startup.
//
// # Example
//
//	import "github.com/matzehuels/wireframe/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported 3 formats (41ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards engine events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.EditorHooks   = logHooks{}
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)

// installHooks registers l as the sink for editor, pipeline and cache events.
func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetEditorHooks(h)
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnSessionStart(_ context.Context, mode string, elements int) {
	h.logger.Debug("session started", "mode", mode, "elements", elements)
}

func (h logHooks) OnSessionEnd(_ context.Context, mode, reason string) {
	h.logger.Debug("session ended", "mode", mode, "by", reason)
}

func (h logHooks) OnCommand(_ context.Context, name string, elements, selected int) {
	if name == "pointer_move" {
		return
	}
	h.logger.Debug("applied", "event", name, "elements", elements, "selected", selected)
}

func (h logHooks) OnReplayStart(_ context.Context, steps int) {
	h.logger.Debug("replay started", "steps", steps)
}

func (h logHooks) OnReplayComplete(_ context.Context, steps, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("replay failed", "steps", steps, "error", err)
		return
	}
	h.logger.Debug("replay complete", "steps", steps, "elements", elements, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
