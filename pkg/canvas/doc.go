// Package canvas provides the element model of the wireframe editor:
// shapes, their geometry, the selection set, and the pure functions that
// reorder, align and restyle them.
//
// # Overview
//
// A wireframe is an ordered [Collection] of [Element] values. Position in
// the collection is z-order: later elements are drawn on top. Every
// operation in this package is a pure function over immutable snapshots.
// Nothing here mutates a collection or selection in place; callers (see
// package editor) replace their snapshot with the returned value.
//
// # Elements
//
// Elements are created with [New], which applies the per-[Kind] defaults:
//
//	rect := canvas.New(canvas.KindRectangle, "rectangle-1")
//	// rect.Rect == canvas.Rect{X: 50, Y: 50, Width: 200, Height: 100}
//
// Geometry is always positive. [Resize] clamps both axes at [MinSize] and
// keeps the edge or corner opposite to the active [Handle] fixed.
//
// # Selection
//
// [Selection] is an ordered id set. It is not validated against a
// collection until used; [Selection.Prune] restores the subset invariant
// after deletions.
//
// # Ordering and Alignment
//
// [BringForward] and [SendBackward] move each selected element one slot
// without letting a selected element leapfrog another selected element.
// [Align] implements the six alignment modes; each needs at least two
// selected elements and computes its aggregate from the pre-mutation state.
//
// # Properties
//
// Property edits arrive as strings from forms, scripts and the command
// palette. [ParseProperty] converts them into a typed [PropertyValue] at the
// boundary, rejecting malformed numbers before any state changes.
package canvas
