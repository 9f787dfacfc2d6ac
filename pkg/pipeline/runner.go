package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/render"
	"github.com/matzehuels/wireframe/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no results between calls; multiple goroutines can use
// the same Runner with different options as long as the cache is safe for
// concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // artifact lifetime; zero means TTLArtifact
}

// NewRunner creates a runner. A nil keyer uses [cache.DefaultKeyer], a
// nil cache disables caching and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute replays script and renders the final canvas.
func (r *Runner) Execute(ctx context.Context, script *io.Script, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	replayStart := time.Now()
	state, err := r.Replay(ctx, script, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	result := &Result{
		State: state,
		Scene: render.SceneOf(state),
		Stats: Stats{
			Steps:      len(script.Steps),
			Elements:   state.Elements.Len(),
			ReplayTime: time.Since(replayStart),
		},
	}
	r.Logger.Info("replayed script",
		"steps", result.Stats.Steps,
		"elements", result.Stats.Elements,
		"duration", result.Stats.ReplayTime)

	renderStart := time.Now()
	artifacts, hash, hit, err := r.RenderWithCacheInfo(ctx, result.Scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SceneHash = hash
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Replay feeds the script's events through a fresh editor configured by
// cfg and the script's settings, and returns the final state. New elements
// are numbered by an [editor.Sequence], so replays are deterministic.
func (r *Runner) Replay(ctx context.Context, script *io.Script, cfg editor.Config) (state editor.State, err error) {
	hooks := observability.Pipeline()
	hooks.OnReplayStart(ctx, len(script.Steps))
	start := time.Now()
	defer func() {
		hooks.OnReplayComplete(ctx, len(script.Steps), state.Elements.Len(), time.Since(start), err)
	}()

	events, err := script.Events()
	if err != nil {
		return editor.State{}, err
	}

	ed := editor.New(
		editor.WithIDSource(&editor.Sequence{}),
		editor.WithConfig(script.Settings.Apply(cfg)),
		editor.WithContext(ctx),
	)
	defer ed.Close()

	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return editor.State{}, err
		}
		ed.Dispatch(ev)
		r.Logger.Debug("applied step", "step", i+1, "event", ev.Name())
	}
	return ed.State(), nil
}

// SceneHash hashes everything about a scene that can change its
// renderings.
func SceneHash(sc render.Scene) (string, error) {
	data, err := sink.RenderJSON(sc, sink.WithJSONSelection())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize scene for cache key")
	}
	return cache.Hash(data), nil
}

// RenderWithCacheInfo renders every requested format, serving them from
// the cache when all are present. It returns the artifacts, the scene
// hash and whether the cache served them.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, sc render.Scene, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}
	hash, err := SceneHash(sc)
	if err != nil {
		return nil, "", false, err
	}

	hooks := observability.Cache()
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, key)
				break
			}
			hooks.OnCacheHit(ctx, key)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, hash, true, nil
		}
	}

	rendered, err := r.renderScene(ctx, sc, opts)
	if err != nil {
		return nil, "", false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		hooks.OnCacheSet(ctx, key, len(data))
	}
	return rendered, hash, false, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return TTLArtifact
}

// Render is RenderWithCacheInfo without the cache details.
func (r *Runner) Render(ctx context.Context, sc render.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.RenderWithCacheInfo(ctx, sc, opts)
	return artifacts, err
}

func (r *Runner) renderScene(ctx context.Context, sc render.Scene, opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()
	return RenderScene(ctx, sc, opts)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
