package geom

import "fmt"

// =============================================================================
// Point and Size
// =============================================================================

// Point is a position in some coordinate space.
type Point struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height extent. Negative dimensions are never produced by
// this package; callers supplying them get undefined placement results.
type Size struct {
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an axis-aligned rectangle. A zero-size Rect is valid and
// degenerates to a point.
type Rect struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// RectAt builds a Rect from an origin and a size.
func RectAt(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int {
	return r.X + r.W
}

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int {
	return r.Y + r.H
}

// Center returns the midpoint, truncating toward zero for odd dimensions.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ContainsPoint reports whether p lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether inner lies fully within r, edges inclusive.
func (r Rect) ContainsRect(inner Rect) bool {
	return inner.X >= r.X && inner.MaxX() <= r.MaxX() &&
		inner.Y >= r.Y && inner.MaxY() <= r.MaxY()
}

// Pad returns r grown outward by the given insets. Negative insets shrink.
func (r Rect) Pad(in Insets) Rect {
	return Rect{
		X: r.X - in.Left,
		Y: r.Y - in.Top,
		W: r.W + in.Left + in.Right,
		H: r.H + in.Top + in.Bottom,
	}
}

// Inset returns r shrunk inward by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// String returns the rectangle as "WxH+X+Y" in X geometry style.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// =============================================================================
// Insets
// =============================================================================

// Insets describes per-edge border widths, such as a window's decorative
// shadow around its content box.
type Insets struct {
	Top    int `json:"top" toml:"top"`
	Left   int `json:"left" toml:"left"`
	Right  int `json:"right" toml:"right"`
	Bottom int `json:"bottom" toml:"bottom"`
}

// IsZero reports whether all four edges are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

// Horizontal returns the combined left and right widths.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the combined top and bottom widths.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}
