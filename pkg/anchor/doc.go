// Package anchor defines symbolic alignment points on rectangles.
//
// An [Anchor] names one of nine special points of a rectangle: the four
// corners, the four edge midpoints, and the center. Internally it is two
// independent per-axis [Component] values, each one of min, center, or
// max. Center is the zero value, so an unset axis defaults to center.
//
// # Projection
//
// [Project] maps a rectangle and an anchor to the concrete point:
//
//	p := anchor.Project(rect, anchor.BottomRight)
//
// Midpoints truncate toward zero (20/2 and 21/2 both give 10), matching
// the engine-wide integer rounding rule.
//
// # Flipping
//
// [Anchor.Opposite] mirrors an anchor across a rectangle's center, per
// axis: min and max swap, center is unchanged. The placement engine uses
// axis-restricted mirroring via [Component.Opposite] when only one axis
// flips.
//
// # Construction
//
// Use the named anchors (TopLeft, Bottom, Center, ...) directly, parse
// config strings with [Parse], or validate raw edge flags with
// [FromFlags]. Unlike a bitmask API there is no invalid Anchor value;
// only FromFlags can fail, and it fails explicitly instead of warning
// and carrying on.
package anchor
