// Package pkg provides the core libraries for wireframe, a canvas editor
// for laying out UI mockups from rectangles, text boxes and circles.
//
// # Overview
//
// The editor is a pure state machine: pointer, keyboard and toolbar events
// go in, a new immutable snapshot of the canvas comes out. Everything else
// in the module either feeds it events or draws its snapshots. The pkg
// directory is organized into four main areas:
//
//  1. [canvas] - Element model (geometry, styling, ordering, alignment)
//  2. [editor] - Selection and the drag/resize state machine
//  3. [io] - Replay scripts that record editor sessions as TOML
//  4. [pipeline] - Orchestration (replay → scene → render → cache)
//
// # Architecture
//
// The typical data flow:
//
//	Terminal mouse/keys or a TOML script
//	         ↓
//	    [editor] package (events → state)
//	         ↓
//	    [render] package (state → scene)
//	         ↓
//	    [render/sink], [render/dot], [render/term]
//	         ↓
//	    SVG/PNG/JSON/DOT/text output
//
// # Quick Start
//
// Drive an editor and render the result:
//
//	import (
//	    "github.com/matzehuels/wireframe/pkg/canvas"
//	    "github.com/matzehuels/wireframe/pkg/editor"
//	    "github.com/matzehuels/wireframe/pkg/render"
//	    "github.com/matzehuels/wireframe/pkg/render/sink"
//	)
//
//	ed := editor.New(editor.WithIDSource(&editor.Sequence{}))
//	defer ed.Close()
//
//	ed.Dispatch(editor.AddElement{Kind: canvas.KindRectangle})
//	ed.Dispatch(editor.PointerDown{ID: "rectangle-1", Pos: canvas.Point{X: 60, Y: 60}})
//	ed.Dispatch(editor.PointerMove{Pos: canvas.Point{X: 160, Y: 90}})
//	ed.Dispatch(editor.PointerUp{})
//
//	svg := sink.RenderSVG(render.SceneOf(ed.State()))
//
// # Main Packages
//
// [canvas] - Elements, the ordered collection that is also the paint order,
// selections, resize handles, property edits, and the bring forward, send
// backward and align operations.
//
// [editor] - The event reducer and its interaction modes (idle, dragging,
// resizing), keyboard bindings, id sources and pointer capture.
//
// [io] - TOML replay scripts. A recorded session replays to the same
// canvas.
//
// [render] - Scenes (immutable render snapshots) and color handling.
//
//   - [render/sink]: SVG, PNG and JSON output
//   - [render/dot]: Graphviz DOT export and the graphviz engine
//   - [render/term]: Terminal cell rendering, viewports and hit testing
//
// [pipeline] - Replays scripts and renders scenes with content-addressed
// caching. Used by the CLI for both render and in-editor export.
//
// [cache] - Artifact caches (file, null) and key derivation.
//
// [observability] - Hooks for editor, pipeline and cache events.
//
// [errors] - Error codes and input validation shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/editor/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/canvas
// [editor]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/editor
// [io]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/sink
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/dot
// [render/term]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/term
// [cache]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/errors
package pkg
