package place

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/observability"
	"github.com/perchkit/perch/pkg/perr"
)

// =============================================================================
// Collaborator Interfaces
// =============================================================================

// Window is a movable window handle. Implementations are queried
// synchronously on the caller's thread.
type Window interface {
	// ID identifies the window in logs and hooks.
	ID() string

	// Size returns the window's current outer size, decoration included.
	Size() geom.Size

	// Shadow returns the decoration insets around the content box.
	// Zero insets mean the whole window is content.
	Shadow() geom.Insets

	// Move places the window's outer top-left corner at the given root
	// coordinates.
	Move(x, y int)
}

// Monitors resolves points to monitor workareas.
type Monitors interface {
	// WorkareaAt returns the workarea of the monitor containing p, and
	// whether one was found.
	WorkareaAt(p geom.Point) (geom.Rect, bool)
}

// =============================================================================
// Mover - Move Orchestration
// =============================================================================

// Mover positions windows using placement descriptors. It holds no
// per-window state; a single Mover serves any number of windows.
type Mover struct {
	monitors Monitors
	logger   *log.Logger
}

// NewMover creates a Mover over the given monitor lookup. A nil logger
// discards warnings.
func NewMover(monitors Monitors, logger *log.Logger) *Mover {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mover{monitors: monitors, logger: logger}
}

// MoveWindow computes the placement for w according to p, moves the
// window there, and invokes p's position callback with the result.
//
// A nil p or one without an attachment rectangle is a no-op: menu code
// routinely calls this during configuration changes before the anchor
// is known. A missing monitor under the attachment rectangle's center
// degrades to an unbounded resolution with a warning.
func (m *Mover) MoveWindow(p *attach.Params, w Window) (attach.Result, error) {
	if w == nil {
		return attach.Result{}, perr.New(perr.ErrCodeWindowNotFound, "nil window")
	}
	if p == nil || !p.HasAttachRect() {
		m.logger.Debug("move skipped: no attachment rectangle", "window", w.ID())
		return attach.Result{}, nil
	}

	res, bounded, err := m.resolve(p, w.Size(), w.Shadow())
	if err != nil {
		return attach.Result{}, err
	}

	w.Move(res.X, res.Y)
	m.logger.Debug("window moved", "window", w.ID(), "result", res, "bounded", bounded)
	observability.Placement().OnMove(w.ID(), res)

	if cb := p.PositionCallback(); cb != nil {
		cb(res)
	}
	return res, nil
}

// ResolveForWindow computes the placement for w without moving it,
// using the same monitor selection as MoveWindow.
func (m *Mover) ResolveForWindow(p *attach.Params, w Window) (attach.Result, error) {
	if w == nil {
		return attach.Result{}, perr.New(perr.ErrCodeWindowNotFound, "nil window")
	}
	res, _, err := m.resolve(p, w.Size(), w.Shadow())
	return res, err
}

// resolve picks the monitor workarea containing the attachment
// rectangle's center and runs the engine. The second return value
// reports whether bounds were available.
func (m *Mover) resolve(p *attach.Params, size geom.Size, shadow geom.Insets) (attach.Result, bool, error) {
	var bounds *geom.Rect

	if rect, ok := p.AttachRect(); ok && m.monitors != nil {
		center := rect.Center()
		if wa, found := m.monitors.WorkareaAt(center); found {
			bounds = &wa
		} else {
			m.logger.Warn("no monitor under attachment rectangle; placing unconstrained", "center", center)
		}
	}

	res, err := attach.Resolve(p, size, shadow, bounds)
	if err != nil {
		return attach.Result{}, false, err
	}
	observability.Placement().OnResolve(res)
	return res, bounds != nil, nil
}
