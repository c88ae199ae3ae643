package attach

import (
	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/geom"
)

// =============================================================================
// Collaborator Interfaces
// =============================================================================

// Frame is a coordinate space that can convert rectangles into root
// (screen) space, typically by walking its ancestor chain and
// accumulating offsets. The windowing backend provides implementations;
// the engine only ever calls ToRoot once, when the attachment rectangle
// is set.
type Frame interface {
	ToRoot(geom.Rect) geom.Rect
}

// Callback receives the final placement after a window has been moved.
// The position may be determined asynchronously by some backends, so it
// is called when the final position becomes known, not necessarily
// before the triggering move call returns.
type Callback func(Result)

// =============================================================================
// Params - Placement Descriptor
// =============================================================================

// Params describes how a window should be positioned relative to an
// attachment rectangle. Configure it once through the setters, then
// resolve as often as needed; reads are side-effect-free and every
// resolution is independent.
//
// The zero value is not usable; call NewParams, which enables flipping
// on both axes to match the common menu/popover behavior.
type Params struct {
	attachRect    geom.Rect
	hasAttachRect bool

	// origin is the root-space origin of the attachment rectangle's
	// coordinate system. SetAttachRect fills it from the frame;
	// SetAttachOrigin sets it directly for pre-converted callers.
	origin geom.Point

	rectAnchor   anchor.Anchor
	windowAnchor anchor.Anchor

	flipX bool
	flipY bool

	offset geom.Point

	callback Callback
}

// NewParams creates a placement descriptor with the defaults: center
// anchors on both rectangle and window, flipping allowed on both axes,
// no offset.
func NewParams() *Params {
	return &Params{flipX: true, flipY: true}
}

// Copy returns a deep copy of p. The callback is shared, not cloned;
// closures carry their own state.
func (p *Params) Copy() *Params {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// SetAttachRect sets the attachment rectangle the window is positioned
// relative to, given in frame's coordinate space. A nil frame means rect
// is already in root coordinates. Passing the zero Rect is valid (a
// point anchor); use ClearAttachRect to unset.
func (p *Params) SetAttachRect(rect geom.Rect, frame Frame) {
	if frame != nil {
		rect = frame.ToRoot(rect)
	}
	p.attachRect = rect
	p.origin = geom.Point{}
	p.hasAttachRect = true
}

// ClearAttachRect unsets the attachment rectangle. Resolve fails and
// move orchestration no-ops until a new one is set.
func (p *Params) ClearAttachRect() {
	p.attachRect = geom.Rect{}
	p.origin = geom.Point{}
	p.hasAttachRect = false
}

// HasAttachRect reports whether an attachment rectangle has been set.
func (p *Params) HasAttachRect() bool {
	return p.hasAttachRect
}

// AttachRect returns the attachment rectangle in root coordinates and
// whether one has been set.
func (p *Params) AttachRect() (geom.Rect, bool) {
	return p.attachRect.Translate(p.origin.X, p.origin.Y), p.hasAttachRect
}

// SetAttachOrigin sets the root-space origin of the attachment
// rectangle's coordinate system, for callers that track the conversion
// themselves instead of supplying a Frame.
func (p *Params) SetAttachOrigin(x, y int) {
	p.origin = geom.Point{X: x, Y: y}
}

// SetAnchors sets the anchor point on the attachment rectangle and the
// anchor point on the window that the resolver aligns to it.
func (p *Params) SetAnchors(rect, window anchor.Anchor) {
	p.rectAnchor = rect
	p.windowAnchor = window
}

// Anchors returns the rectangle and window anchors.
func (p *Params) Anchors() (rect, window anchor.Anchor) {
	return p.rectAnchor, p.windowAnchor
}

// SetFlipHints sets whether the resolver may try the mirror-image anchor
// pair per axis when the preferred placement would leave the bounds.
func (p *Params) SetFlipHints(allowX, allowY bool) {
	p.flipX = allowX
	p.flipY = allowY
}

// FlipHints returns the per-axis flip permissions.
func (p *Params) FlipHints() (allowX, allowY bool) {
	return p.flipX, p.flipY
}

// SetOffset sets the displacement added to the anchored position before
// bounds adjustment. A flipped axis subtracts its component instead.
func (p *Params) SetOffset(dx, dy int) {
	p.offset = geom.Point{X: dx, Y: dy}
}

// Offset returns the configured displacement.
func (p *Params) Offset() (dx, dy int) {
	return p.offset.X, p.offset.Y
}

// SetPositionCallback sets the function called with the final placement
// after a move. Any previously set callback is replaced; pass nil to
// remove. The closure owns whatever state it captures.
func (p *Params) SetPositionCallback(cb Callback) {
	p.callback = cb
}

// PositionCallback returns the configured callback, or nil.
func (p *Params) PositionCallback() Callback {
	return p.callback
}
