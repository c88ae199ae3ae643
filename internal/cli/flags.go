package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/geom"
)

// =============================================================================
// Geometry Flag Parsing
// =============================================================================

// parseInts splits a comma-separated list of integers and checks arity.
func parseInts(s string, want int, what string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("invalid %s %q: want %d comma-separated integers", what, s, want)
	}
	vals := make([]int, want)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", what, s, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseRect parses "x,y,w,h" into a rectangle.
func parseRect(s string) (geom.Rect, error) {
	v, err := parseInts(s, 4, "rectangle")
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

// parseSize parses "w,h" into a size.
func parseSize(s string) (geom.Size, error) {
	v, err := parseInts(s, 2, "size")
	if err != nil {
		return geom.Size{}, err
	}
	return geom.Size{W: v[0], H: v[1]}, nil
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (geom.Point, error) {
	v, err := parseInts(s, 2, "point")
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: v[0], Y: v[1]}, nil
}

// parseInsets parses "top,left,right,bottom" into insets.
func parseInsets(s string) (geom.Insets, error) {
	v, err := parseInts(s, 4, "insets")
	if err != nil {
		return geom.Insets{}, err
	}
	return geom.Insets{Top: v[0], Left: v[1], Right: v[2], Bottom: v[3]}, nil
}

// parseAnchorFlag parses an anchor name, defaulting to center when empty.
func parseAnchorFlag(s string) (anchor.Anchor, error) {
	if s == "" {
		return anchor.Middle, nil
	}
	return anchor.Parse(s)
}
