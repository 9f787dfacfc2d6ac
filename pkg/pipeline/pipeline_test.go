package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/io"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"dot", false},
		{"txt", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestValidateEngine(t *testing.T) {
	for engine, wantErr := range map[string]bool{"native": false, "graphviz": false, "cairo": true, "": true} {
		if err := ValidateEngine(engine); (err != nil) != wantErr {
			t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", engine, err, wantErr)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Engine != DefaultEngine {
		t.Errorf("Engine = %q", opts.Engine)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %vx%v", opts.Width, opts.Height)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v", opts.Scale)
	}
	if opts.Config != editor.DefaultConfig() {
		t.Errorf("Config = %+v", opts.Config)
	}
	if opts.Logger == nil {
		t.Error("Logger not set")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Formats: []string{"png"}, Scale: -1}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("negative scale error = %v", err)
	}

	opts = Options{Formats: []string{"svg", "json"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	opts.Formats = []string{"bogus"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call should be a no-op, got %v", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Scale: 3, Grid: true, Detailed: true, EmbedFont: true}
	opts.SetDefaults()

	if k := opts.ArtifactKeyOpts(FormatPNG); k.Scale != 3 || !k.Grid || k.Detailed || k.EmbedFont {
		t.Errorf("png key = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatSVG); k.Scale != 0 || !k.EmbedFont {
		t.Errorf("svg key = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatDOT); !k.Detailed || k.Grid {
		t.Errorf("dot key = %+v", k)
	}

	opts.Engine = EngineGraphviz
	if k := opts.ArtifactKeyOpts(FormatSVG); k.Format != "svg+graphviz" || k.Grid {
		t.Errorf("graphviz svg key = %+v", k)
	}
}

// memCache is a map-backed cache counting its traffic.
type memCache struct {
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func demoScript(t *testing.T) *io.Script {
	t.Helper()
	s := &io.Script{}
	for _, ev := range []editor.Event{
		editor.AddElement{Kind: canvas.KindRectangle},
		editor.AddElement{Kind: canvas.KindText},
		editor.UpdateProperty{Value: canvas.TextValue(canvas.PropContent, "Sign up")},
		editor.PointerDown{ID: "text-2", Pos: canvas.Point{X: 110, Y: 130}},
		editor.PointerMove{Pos: canvas.Point{X: 130, Y: 160}},
		editor.PointerUp{},
		editor.Toggle{ID: "rectangle-1"},
		editor.Align{Mode: canvas.AlignLeft},
	} {
		if !s.Append(ev) {
			t.Fatalf("Append(%T) failed", ev)
		}
	}
	return s
}

func TestReplay(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	state, err := r.Replay(context.Background(), demoScript(t), editor.DefaultConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if got := state.Elements.IDs(); len(got) != 2 || got[0] != "rectangle-1" || got[1] != "text-2" {
		t.Fatalf("ids = %v", got)
	}
	text, _ := state.Elements.Get("text-2")
	// Dragged by (20, 30) to (120, 150), then left-aligned with the
	// rectangle at x=50.
	if text.X != 50 || text.Y != 150 {
		t.Errorf("text at (%v, %v), want (50, 150)", text.X, text.Y)
	}
	if text.Text.Content != "Sign up" {
		t.Errorf("content = %q", text.Text.Content)
	}
	if state.Session != nil {
		t.Error("session still active after pointer_up")
	}
}

func TestReplayErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	bad := &io.Script{Steps: []io.Step{{Name: "add", Kind: "hexagon"}}}
	if _, err := r.Replay(context.Background(), bad, editor.DefaultConfig()); !errors.Is(err, errors.ErrCodeInvalidScript) {
		t.Errorf("Replay(bad) error = %v, want INVALID_SCRIPT", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Replay(ctx, demoScript(t), editor.DefaultConfig()); err != context.Canceled {
		t.Errorf("Replay(canceled) error = %v", err)
	}
}

func TestExecuteCaches(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatDOT, FormatText}}

	first, err := r.Execute(context.Background(), demoScript(t), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run hit the cache")
	}
	if len(first.Artifacts) != 4 {
		t.Fatalf("artifacts = %d, want 4", len(first.Artifacts))
	}
	if mc.sets != 4 {
		t.Errorf("cache sets = %d, want 4", mc.sets)
	}
	if first.Stats.Steps != 8 || first.Stats.Elements != 2 {
		t.Errorf("stats = %+v", first.Stats)
	}

	second, err := r.Execute(context.Background(), demoScript(t), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run missed the cache")
	}
	if second.SceneHash != first.SceneHash {
		t.Error("identical replays hashed differently")
	}
	for f, data := range first.Artifacts {
		if string(second.Artifacts[f]) != string(data) {
			t.Errorf("%s artifact differs between runs", f)
		}
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), demoScript(t), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run hit the cache")
	}
}

func TestSceneHashChangesWithContent(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	a, err := r.Execute(ctx, demoScript(t), Options{Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	s := demoScript(t)
	s.Append(editor.SetBackground{Color: "#ffffff"})
	b, err := r.Execute(ctx, s, Options{Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if a.SceneHash == b.SceneHash {
		t.Error("background change kept the scene hash")
	}
}

func TestRenderSceneText(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), demoScript(t), Options{Formats: []string{FormatText}})
	if err != nil {
		t.Fatal(err)
	}
	txt := string(res.Artifacts[FormatText])
	lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
	if len(lines) != 30 {
		t.Errorf("txt has %d rows, want 30", len(lines))
	}
	if !strings.Contains(txt, "Sign up") {
		t.Error("txt lacks the text content")
	}
	if strings.ContainsRune(txt, '●') {
		t.Error("txt drew handles without Selection")
	}
}

func TestRenderScenePNG(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), demoScript(t), Options{Formats: []string{FormatPNG}, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if png := res.Artifacts[FormatPNG]; len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("png artifact lacks the PNG signature")
	}
}
