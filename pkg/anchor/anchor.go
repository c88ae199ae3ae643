package anchor

import (
	"fmt"

	"github.com/perchkit/perch/pkg/geom"
)

// =============================================================================
// Component - Per-Axis Alignment
// =============================================================================

// Component selects a point along one axis of a rectangle. The zero value
// is Center, so an unconfigured axis aligns to the middle.
type Component int8

const (
	// Center selects the truncated midpoint of the axis.
	Center Component = iota
	// Min selects the low edge (left or top).
	Min
	// Max selects the high edge (right or bottom).
	Max
)

// Along returns the coordinate the component selects on an axis starting
// at origin with the given extent.
func (c Component) Along(origin, extent int) int {
	switch c {
	case Min:
		return origin
	case Max:
		return origin + extent
	default:
		return origin + extent/2
	}
}

// Opposite mirrors the component: Min and Max swap, Center is unchanged.
func (c Component) Opposite() Component {
	switch c {
	case Min:
		return Max
	case Max:
		return Min
	default:
		return Center
	}
}

// String returns "min", "center", or "max".
func (c Component) String() string {
	switch c {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "center"
	}
}

// =============================================================================
// Anchor - Two-Axis Alignment Point
// =============================================================================

// Anchor names a point on a rectangle as one horizontal and one vertical
// Component. The zero value is the rectangle's center.
type Anchor struct {
	X Component
	Y Component
}

// The nine named anchors.
var (
	TopLeft     = Anchor{X: Min, Y: Min}
	Top         = Anchor{X: Center, Y: Min}
	TopRight    = Anchor{X: Max, Y: Min}
	Left        = Anchor{X: Min, Y: Center}
	Middle      = Anchor{X: Center, Y: Center}
	Right       = Anchor{X: Max, Y: Center}
	BottomLeft  = Anchor{X: Min, Y: Max}
	Bottom      = Anchor{X: Center, Y: Max}
	BottomRight = Anchor{X: Max, Y: Max}
)

// Opposite mirrors the anchor across the rectangle center on both axes.
func (a Anchor) Opposite() Anchor {
	return Anchor{X: a.X.Opposite(), Y: a.Y.Opposite()}
}

// String returns the canonical name, e.g. "bottom-left" or "center".
func (a Anchor) String() string {
	if a.Y == Center {
		switch a.X {
		case Min:
			return "left"
		case Max:
			return "right"
		default:
			return "center"
		}
	}

	var v string
	if a.Y == Min {
		v = "top"
	} else {
		v = "bottom"
	}
	switch a.X {
	case Min:
		return v + "-left"
	case Max:
		return v + "-right"
	default:
		return v
	}
}

// Project returns the concrete point a selects on r. Zero-size rectangles
// are valid; every component collapses to the origin coordinate.
func Project(r geom.Rect, a Anchor) geom.Point {
	return geom.Point{
		X: a.X.Along(r.X, r.W),
		Y: a.Y.Along(r.Y, r.H),
	}
}

// =============================================================================
// Parsing and Flag Validation
// =============================================================================

// names maps the canonical config spelling of each anchor.
var names = map[string]Anchor{
	"top-left":     TopLeft,
	"top":          Top,
	"top-right":    TopRight,
	"left":         Left,
	"center":       Middle,
	"right":        Right,
	"bottom-left":  BottomLeft,
	"bottom":       Bottom,
	"bottom-right": BottomRight,
}

// Parse converts a canonical anchor name to an Anchor.
func Parse(s string) (Anchor, error) {
	a, ok := names[s]
	if !ok {
		return Anchor{}, fmt.Errorf("unknown anchor %q", s)
	}
	return a, nil
}

// Edge flags accepted by FromFlags, for callers migrating from bitmask
// style APIs. FlagCenter is zero: no edge flag means center on both axes.
const (
	FlagCenter uint = 0
	FlagLeft   uint = 1 << 0
	FlagRight  uint = 1 << 1
	FlagTop    uint = 1 << 2
	FlagBottom uint = 1 << 3
)

// FromFlags validates a raw edge bitmask and converts it to an Anchor.
// Conflicting flags (left|right, top|bottom) and unknown bits are
// reported as errors rather than silently defaulting.
func FromFlags(flags uint) (Anchor, error) {
	if flags&^(FlagLeft|FlagRight|FlagTop|FlagBottom) != 0 {
		return Anchor{}, fmt.Errorf("invalid anchor flags 0x%X: unknown bits", flags)
	}
	if flags&FlagLeft != 0 && flags&FlagRight != 0 {
		return Anchor{}, fmt.Errorf("invalid anchor flags 0x%X: left and right are exclusive", flags)
	}
	if flags&FlagTop != 0 && flags&FlagBottom != 0 {
		return Anchor{}, fmt.Errorf("invalid anchor flags 0x%X: top and bottom are exclusive", flags)
	}

	var a Anchor
	switch {
	case flags&FlagLeft != 0:
		a.X = Min
	case flags&FlagRight != 0:
		a.X = Max
	}
	switch {
	case flags&FlagTop != 0:
		a.Y = Min
	case flags&FlagBottom != 0:
		a.Y = Max
	}
	return a, nil
}
