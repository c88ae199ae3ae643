package attach

import (
	"fmt"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/perr"
)

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a resolution: the final window origin, the
// net clamp shift applied per axis, and whether each axis used the
// flipped anchor pair.
type Result struct {
	// X, Y is the final window origin in root coordinates.
	X int `json:"x"`
	Y int `json:"y"`

	// OffsetX, OffsetY is the feedback offset: how far clamping moved
	// the window from the anchored (possibly flipped) ideal. Zero when
	// no clamping was needed.
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`

	// FlippedX, FlippedY report whether the mirror-image anchor pair
	// was used on that axis.
	FlippedX bool `json:"flipped_x"`
	FlippedY bool `json:"flipped_y"`
}

// Origin returns the final window origin as a point.
func (r Result) Origin() geom.Point {
	return geom.Point{X: r.X, Y: r.Y}
}

// Clamped reports whether any clamping was applied.
func (r Result) Clamped() bool {
	return r.OffsetX != 0 || r.OffsetY != 0
}

// String summarizes the result for logs.
func (r Result) String() string {
	return fmt.Sprintf("origin=(%d, %d) offset=(%d, %d) flipped=(%t, %t)",
		r.X, r.Y, r.OffsetX, r.OffsetY, r.FlippedX, r.FlippedY)
}

// =============================================================================
// Resolve - Anchor, Flip, Clamp
// =============================================================================

// Resolve computes the placement of a window of the given size according
// to p, constrained to bounds (usually a monitor workarea). A nil bounds
// disables flipping and clamping entirely: the result is the raw
// anchored position with zero offsets.
//
// The shadow insets describe non-content decoration around the window's
// content box. The content box is what anchors and what must stay within
// bounds; the decoration may overhang both the attachment rectangle and
// the workarea edges.
//
// Resolve is pure. It returns an error only for usage mistakes: a nil
// descriptor or one without an attachment rectangle.
func Resolve(p *Params, size geom.Size, shadow geom.Insets, bounds *geom.Rect) (Result, error) {
	if p == nil {
		return Result{}, perr.New(perr.ErrCodeInternal, "nil placement descriptor")
	}
	if !p.hasAttachRect {
		return Result{}, perr.New(perr.ErrCodeMissingAttachRect, "no attachment rectangle set")
	}

	rect := p.attachRect.Translate(p.origin.X, p.origin.Y)
	contentW := size.W - shadow.Horizontal()
	contentH := size.H - shadow.Vertical()

	// Preferred placement: content box anchored, offset applied.
	x := axisPosition(rect.X, rect.W, p.rectAnchor.X, p.windowAnchor.X, shadow.Left, contentW) + p.offset.X
	y := axisPosition(rect.Y, rect.H, p.rectAnchor.Y, p.windowAnchor.Y, shadow.Top, contentH) + p.offset.Y

	res := Result{X: x, Y: y}

	if bounds == nil {
		return res, nil
	}

	// Only the content area must stay within the workarea, so the
	// decoration gets to spill past the edges by its own width.
	padded := bounds.Pad(shadow)

	if p.flipX && !fitsAxis(x, size.W, padded.X, padded.MaxX()) {
		alt := axisPosition(rect.X, rect.W, p.rectAnchor.X.Opposite(), p.windowAnchor.X.Opposite(), shadow.Left, contentW) - p.offset.X
		if fitsAxis(alt, size.W, padded.X, padded.MaxX()) {
			x = alt
			res.FlippedX = true
		}
	}
	if p.flipY && !fitsAxis(y, size.H, padded.Y, padded.MaxY()) {
		alt := axisPosition(rect.Y, rect.H, p.rectAnchor.Y.Opposite(), p.windowAnchor.Y.Opposite(), shadow.Top, contentH) - p.offset.Y
		if fitsAxis(alt, size.H, padded.Y, padded.MaxY()) {
			y = alt
			res.FlippedY = true
		}
	}

	res.X, res.OffsetX = clampAxis(x, size.W, padded.X, padded.MaxX())
	res.Y, res.OffsetY = clampAxis(y, size.H, padded.Y, padded.MaxY())

	return res, nil
}

// axisPosition computes the window origin on one axis so that the window
// content box's anchor component lands on the rectangle's anchor
// component. shadowLo is the decoration width on the low side of the
// axis; contentExtent is the window extent minus both shadow edges.
func axisPosition(rectOrigin, rectExtent int, rectComp, winComp anchor.Component, shadowLo, contentExtent int) int {
	anchorAt := rectComp.Along(rectOrigin, rectExtent)
	return anchorAt - shadowLo - winComp.Along(0, contentExtent)
}

// fitsAxis reports whether [pos, pos+extent] lies within [lo, hi].
func fitsAxis(pos, extent, lo, hi int) bool {
	return pos >= lo && pos+extent <= hi
}

// clampAxis shifts pos so the window stays within [lo, hi], returning
// the new position and the net shift applied. When the window is larger
// than the available range, the edge needing the smaller absolute shift
// wins; exact ties go to the low edge.
func clampAxis(pos, extent, lo, hi int) (int, int) {
	high := hi - extent
	if high < lo {
		toLow := lo - pos
		toHigh := high - pos
		if abs(toLow) <= abs(toHigh) {
			return lo, toLow
		}
		return high, toHigh
	}

	shift := 0
	if pos > high {
		shift += high - pos
		pos = high
	}
	if pos < lo {
		shift += lo - pos
		pos = lo
	}
	return pos, shift
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
