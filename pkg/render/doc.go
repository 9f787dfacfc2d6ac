// Package render turns editor snapshots into visual output.
//
// # Overview
//
// A [Scene] is the render-facing view of an editor state: the elements in
// paint order, the selection, the canvas background and the optional snap
// grid. Renderers live in subpackages:
//
//   - [sink]: file formats (SVG, JSON share export, PNG snapshot)
//   - [dot]: Graphviz DOT export with pinned element positions
//   - [term]: terminal cells and hit testing for the interactive editor
//
// Selected elements are always painted last, after every unselected
// element, and drawn with the selection outline. Resize handles are drawn
// only when exactly one element is selected.
//
//	scene := render.SceneOf(ed.State())
//	svg := sink.RenderSVG(scene, sink.WithGrid())
//
// [sink]: github.com/matzehuels/wireframe/pkg/render/sink
// [dot]: github.com/matzehuels/wireframe/pkg/render/dot
// [term]: github.com/matzehuels/wireframe/pkg/render/term
package render
