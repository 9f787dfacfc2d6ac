// Package dot exports wireframe scenes as Graphviz graphs.
//
// Every element becomes a node pinned at its canvas position, so the
// neato engine reproduces the layout instead of computing one. The DOT
// text can be post-processed with any Graphviz tool; [RenderSVG] and
// [RenderPNG] render it in-process through the WebAssembly build of
// Graphviz bundled with go-graphviz.
//
//	src := dot.ToDOT(scene, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
package dot
