// Package sink provides output format renderers for wireframe scenes.
//
// # Overview
//
// A "sink" transforms a [render.Scene] into a final output format:
//
//   - SVG: scalable vector export, optionally with grid and selection
//   - JSON: the "share" export, every element with its properties
//   - PNG: raster snapshot drawn with gogpu/gg
//
// Selection outlines and resize handles are editor affordances; they are
// left out unless [WithSelection] (or [WithPNGSelection]) is given.
//
// # SVG Output
//
//	svg := sink.RenderSVG(scene, sink.WithGrid(), sink.WithEmbeddedFont())
//
// # JSON Output
//
// [RenderJSON] writes the element list using the property names accepted
// by the property editor, so a shared file doubles as documentation of
// what can be edited.
//
// # PNG Output
//
// [RenderPNG] rasterizes the scene directly; no external converter is
// needed. Text uses the embedded Go Regular font.
//
// [render.Scene]: github.com/matzehuels/wireframe/pkg/render.Scene
package sink
