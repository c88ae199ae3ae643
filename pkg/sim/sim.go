package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/perchkit/perch/pkg/geom"
)

// =============================================================================
// Coordinate Frames
// =============================================================================

// Frame is a node in a coordinate-space tree. Each frame's offset is
// expressed in its parent's space; the root frame is the display's root
// coordinate space. Frames are cheap and immutable once created.
type Frame struct {
	name   string
	offset geom.Point
	parent *Frame
}

// NewRootFrame creates a frame whose space is the root space itself.
func NewRootFrame(name string) *Frame {
	return &Frame{name: name}
}

// NewChild creates a frame offset within f's space.
func (f *Frame) NewChild(name string, offset geom.Point) *Frame {
	return &Frame{name: name, offset: offset, parent: f}
}

// Name returns the frame's name.
func (f *Frame) Name() string { return f.name }

// ToRoot translates a rectangle from f's space into root coordinates by
// accumulating offsets up the ancestor chain.
func (f *Frame) ToRoot(r geom.Rect) geom.Rect {
	for node := f; node != nil; node = node.parent {
		r = r.Translate(node.offset.X, node.offset.Y)
	}
	return r
}

// =============================================================================
// Monitors
// =============================================================================

// Monitor is a fixed output on the display. Geometry is the full panel
// in root coordinates; Workarea is the portion left for windows after
// docks and bars.
type Monitor struct {
	Name     string    `json:"name" toml:"name"`
	Geometry geom.Rect `json:"geometry" toml:"geometry"`
	Workarea geom.Rect `json:"workarea" toml:"workarea"`
}

// =============================================================================
// Display
// =============================================================================

// Display is an in-memory display server: a set of monitors and the
// windows created on them. Not safe for concurrent use.
type Display struct {
	monitors []Monitor
	windows  map[string]*Window
	root     *Frame
}

// NewDisplay creates a display with the given monitors.
func NewDisplay(monitors ...Monitor) *Display {
	return &Display{
		monitors: monitors,
		windows:  make(map[string]*Window),
		root:     NewRootFrame("root"),
	}
}

// Root returns the display's root coordinate frame.
func (d *Display) Root() *Frame { return d.root }

// Monitors returns the display's monitors in declaration order.
func (d *Display) Monitors() []Monitor { return d.monitors }

// WorkareaAt returns the workarea of the monitor whose geometry
// contains p. With overlapping monitors the first declared wins.
func (d *Display) WorkareaAt(p geom.Point) (geom.Rect, bool) {
	for _, m := range d.monitors {
		if m.Geometry.ContainsPoint(p) {
			return m.Workarea, true
		}
	}
	return geom.Rect{}, false
}

// NewWindow creates a window on the display with a fresh identifier.
// The window starts at the root origin.
func (d *Display) NewWindow(size geom.Size, shadow geom.Insets) *Window {
	w := &Window{
		id:     uuid.NewString(),
		size:   size,
		shadow: shadow,
	}
	d.windows[w.id] = w
	return w
}

// Window looks up a window by identifier.
func (d *Display) Window(id string) (*Window, bool) {
	w, ok := d.windows[id]
	return w, ok
}

// =============================================================================
// Windows
// =============================================================================

// Window is a movable simulated window. The size is the outer box,
// shadow included; Bounds reports where it currently sits in root
// coordinates.
type Window struct {
	id     string
	size   geom.Size
	shadow geom.Insets
	pos    geom.Point
	moves  int
}

// ID returns the window's stable identifier.
func (w *Window) ID() string { return w.id }

// Size returns the window's outer size.
func (w *Window) Size() geom.Size { return w.size }

// Shadow returns the decoration insets around the content box.
func (w *Window) Shadow() geom.Insets { return w.shadow }

// Move places the window's outer top-left corner in root coordinates.
func (w *Window) Move(x, y int) {
	w.pos = geom.Point{X: x, Y: y}
	w.moves++
}

// Resize changes the window's outer size. The position is kept.
func (w *Window) Resize(size geom.Size) { w.size = size }

// Pos returns the window's current outer top-left corner.
func (w *Window) Pos() geom.Point { return w.pos }

// Bounds returns the window's outer rectangle in root coordinates.
func (w *Window) Bounds() geom.Rect {
	return geom.Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.W, H: w.size.H}
}

// ContentBounds returns the window's content rectangle, shadow removed.
func (w *Window) ContentBounds() geom.Rect {
	return w.Bounds().Inset(w.shadow)
}

// MoveCount reports how many times the window has been moved.
func (w *Window) MoveCount() int { return w.moves }

func (w *Window) String() string {
	return fmt.Sprintf("window %s at %s", w.id, w.Bounds())
}
