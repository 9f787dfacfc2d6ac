// Package term draws a scene as a grid of terminal cells and maps cells
// back to canvas hit targets.
//
// One cell covers [CellWidth] by [CellHeight] canvas units, which keeps
// shapes roughly in proportion on a typical terminal font. A [Viewport]
// fixes which part of the canvas is visible. [Render] and [HitTest] sample
// the same cell centers, so whatever a cell shows is what a click on it
// selects.
package term
