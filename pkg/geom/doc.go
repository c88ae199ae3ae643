// Package geom provides the integer geometry primitives used by the
// placement engine.
//
// All types are axis-aligned and live in whatever coordinate space the
// caller chooses; the engine itself only ever works in a single root
// (screen) space after conversion. Midpoints use truncating integer
// division, which can bias a center by one pixel for odd dimensions.
// That rounding is part of the engine's contract, not a bug.
//
// # Core Types
//
//   - [Point]: an (x, y) position
//   - [Size]: a (width, height) extent
//   - [Rect]: origin plus size
//   - [Insets]: per-edge border widths (window shadows, workarea padding)
//
// # Usage
//
//	r := geom.Rect{X: 100, Y: 100, W: 20, H: 10}
//	c := r.Center()               // (110, 105)
//	ok := r.ContainsRect(inner)   // bounds checks
//	p := r.Pad(shadow)            // grow outward by insets
package geom
