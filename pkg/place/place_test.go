package place

import (
	"testing"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/observability"
)

// =============================================================================
// Fakes
// =============================================================================

// fakeWindow records moves for assertions.
type fakeWindow struct {
	id     string
	size   geom.Size
	shadow geom.Insets
	moves  []geom.Point
}

func (w *fakeWindow) ID() string          { return w.id }
func (w *fakeWindow) Size() geom.Size     { return w.size }
func (w *fakeWindow) Shadow() geom.Insets { return w.shadow }
func (w *fakeWindow) Move(x, y int)       { w.moves = append(w.moves, geom.Point{X: x, Y: y}) }

// fakeMonitors serves a single workarea, or nothing when absent.
type fakeMonitors struct {
	workarea geom.Rect
	absent   bool
	lookups  []geom.Point
}

func (m *fakeMonitors) WorkareaAt(p geom.Point) (geom.Rect, bool) {
	m.lookups = append(m.lookups, p)
	if m.absent {
		return geom.Rect{}, false
	}
	return m.workarea, true
}

func paramsBelow(rect geom.Rect) *attach.Params {
	p := attach.NewParams()
	p.SetAttachRect(rect, nil)
	p.SetAnchors(anchor.Bottom, anchor.Top)
	return p
}

// =============================================================================
// MoveWindow
// =============================================================================

func TestMoveWindowMovesAndReports(t *testing.T) {
	monitors := &fakeMonitors{workarea: geom.Rect{X: 0, Y: 0, W: 1000, H: 1000}}
	mover := NewMover(monitors, nil)

	w := &fakeWindow{id: "menu", size: geom.Size{W: 40, H: 60}}
	p := paramsBelow(geom.Rect{X: 100, Y: 100, W: 20, H: 10})

	var cbRes *attach.Result
	p.SetPositionCallback(func(res attach.Result) { cbRes = &res })

	res, err := mover.MoveWindow(p, w)
	if err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}

	want := geom.Point{X: 90, Y: 110}
	if res.Origin() != want {
		t.Errorf("origin = %v, want %v", res.Origin(), want)
	}
	if len(w.moves) != 1 || w.moves[0] != want {
		t.Errorf("window moves = %v, want one move to %v", w.moves, want)
	}
	if cbRes == nil {
		t.Fatal("position callback not invoked")
	}
	if *cbRes != res {
		t.Errorf("callback result = %+v, want %+v", *cbRes, res)
	}
}

func TestMoveWindowUsesAttachRectCenterForMonitor(t *testing.T) {
	monitors := &fakeMonitors{workarea: geom.Rect{X: 0, Y: 0, W: 500, H: 500}}
	mover := NewMover(monitors, nil)

	w := &fakeWindow{id: "tip", size: geom.Size{W: 10, H: 10}}
	_, err := mover.MoveWindow(paramsBelow(geom.Rect{X: 100, Y: 200, W: 20, H: 10}), w)
	if err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}

	if len(monitors.lookups) != 1 {
		t.Fatalf("monitor lookups = %d, want 1", len(monitors.lookups))
	}
	if got, want := monitors.lookups[0], (geom.Point{X: 110, Y: 205}); got != want {
		t.Errorf("lookup point = %v, want %v", got, want)
	}
}

func TestMoveWindowNilParamsIsNoOp(t *testing.T) {
	mover := NewMover(&fakeMonitors{}, nil)
	w := &fakeWindow{id: "menu", size: geom.Size{W: 10, H: 10}}

	res, err := mover.MoveWindow(nil, w)
	if err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}
	if res != (attach.Result{}) {
		t.Errorf("result = %+v, want zero", res)
	}
	if len(w.moves) != 0 {
		t.Errorf("window was moved %d times, want none", len(w.moves))
	}
}

func TestMoveWindowWithoutAttachRectIsNoOp(t *testing.T) {
	mover := NewMover(&fakeMonitors{}, nil)
	w := &fakeWindow{id: "menu", size: geom.Size{W: 10, H: 10}}

	var called bool
	p := attach.NewParams()
	p.SetPositionCallback(func(attach.Result) { called = true })

	if _, err := mover.MoveWindow(p, w); err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}
	if len(w.moves) != 0 {
		t.Error("window moved without an attachment rectangle")
	}
	if called {
		t.Error("callback fired without an attachment rectangle")
	}
}

func TestMoveWindowNilWindow(t *testing.T) {
	mover := NewMover(&fakeMonitors{}, nil)
	if _, err := mover.MoveWindow(paramsBelow(geom.Rect{W: 1, H: 1}), nil); err == nil {
		t.Fatal("expected error for nil window")
	}
}

func TestMoveWindowUnboundedWhenMonitorMissing(t *testing.T) {
	monitors := &fakeMonitors{absent: true}
	mover := NewMover(monitors, nil)

	// A tiny workarea would clamp this placement; with no monitor found
	// the raw position must come through untouched.
	w := &fakeWindow{id: "menu", size: geom.Size{W: 400, H: 600}}
	p := paramsBelow(geom.Rect{X: 5000, Y: 5000, W: 20, H: 10})

	res, err := mover.MoveWindow(p, w)
	if err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}
	want := attach.Result{X: 4810, Y: 5010}
	if res != want {
		t.Errorf("result = %+v, want %+v", res, want)
	}
}

func TestMoveWindowEmitsHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	hooks := &recordingHooks{}
	observability.SetPlacementHooks(hooks)

	mover := NewMover(&fakeMonitors{workarea: geom.Rect{W: 1000, H: 1000}}, nil)
	w := &fakeWindow{id: "menu", size: geom.Size{W: 10, H: 10}}

	if _, err := mover.MoveWindow(paramsBelow(geom.Rect{X: 50, Y: 50, W: 10, H: 10}), w); err != nil {
		t.Fatalf("MoveWindow failed: %v", err)
	}
	if hooks.resolves != 1 {
		t.Errorf("OnResolve calls = %d, want 1", hooks.resolves)
	}
	if hooks.movedID != "menu" {
		t.Errorf("OnMove window = %q, want %q", hooks.movedID, "menu")
	}
}

// =============================================================================
// ResolveForWindow
// =============================================================================

func TestResolveForWindowDoesNotMove(t *testing.T) {
	mover := NewMover(&fakeMonitors{workarea: geom.Rect{W: 1000, H: 1000}}, nil)
	w := &fakeWindow{id: "menu", size: geom.Size{W: 40, H: 60}}

	res, err := mover.ResolveForWindow(paramsBelow(geom.Rect{X: 100, Y: 100, W: 20, H: 10}), w)
	if err != nil {
		t.Fatalf("ResolveForWindow failed: %v", err)
	}
	if got, want := res.Origin(), (geom.Point{X: 90, Y: 110}); got != want {
		t.Errorf("origin = %v, want %v", got, want)
	}
	if len(w.moves) != 0 {
		t.Errorf("window moved %d times, want none", len(w.moves))
	}
}

type recordingHooks struct {
	resolves int
	movedID  string
}

func (h *recordingHooks) OnResolve(attach.Result) { h.resolves++ }
func (h *recordingHooks) OnMove(id string, _ attach.Result) {
	h.movedID = id
}
