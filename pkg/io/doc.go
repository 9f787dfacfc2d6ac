// Package io reads and writes editor replay scripts.
//
// # Overview
//
// A script is a TOML document holding optional editor settings and an
// ordered list of steps. Each step names one editor event and carries the
// fields that event needs. Replaying a script through a fresh editor with a
// [editor.Sequence] id source always produces the same canvas, which makes
// scripts useful as fixtures, as render inputs for the CLI, and as the
// output of the terminal editor's --record flag.
//
// # Format
//
//	[settings]
//	snap_to_grid = true
//	background = "#ffffff"
//
//	[[step]]
//	event = "add"
//	kind = "rectangle"
//
//	[[step]]
//	event = "pointer_down"
//	id = "rectangle-1"
//	x = 60
//	y = 60
//
//	[[step]]
//	event = "pointer_move"
//	x = 143
//	y = 97
//
//	[[step]]
//	event = "pointer_up"
//
//	[[step]]
//	event = "set"
//	property = "backgroundColor"
//	value = "#90caf9"
//
// # Steps
//
// The event names match [editor.Event] Name values:
//
//   - pointer_down: id, x, y, optional shift
//   - handle_down: id, handle, x, y
//   - pointer_move: x, y
//   - canvas_down, pointer_up, cancel, clear: no fields
//   - select, toggle: id
//   - add: kind
//   - duplicate, delete, bring_forward, send_backward: no fields
//   - align: mode
//   - set: property, value (a string or a number)
//   - snap: enabled
//   - background: color
//
// Decoding rejects unknown keys. Converting steps to events validates every
// field, and all failures carry the [errors.ErrCodeInvalidScript] code with
// the failing step number.
//
// [errors.ErrCodeInvalidScript]: github.com/matzehuels/wireframe/pkg/errors.ErrCodeInvalidScript
package io
