package svgsink

import (
	"strings"
	"testing"

	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/sim"
)

var testMonitors = []sim.Monitor{{
	Name:     "primary",
	Geometry: geom.Rect{X: 0, Y: 0, W: 800, H: 600},
	Workarea: geom.Rect{X: 0, Y: 20, W: 800, H: 580},
}}

func TestRenderProducesDocument(t *testing.T) {
	out := string(Render(testMonitors, []Item{{
		Name:       "menu",
		AttachRect: geom.Rect{X: 100, Y: 100, W: 40, H: 20},
		Size:       geom.Size{W: 120, H: 200},
		Result:     attach.Result{X: 60, Y: 120},
	}}))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output does not start with an svg element")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output does not close the svg element")
	}
	for _, want := range []string{`class="monitor"`, `class="workarea"`, `class="attach"`, `class="window"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if strings.Contains(out, `class="correction"`) {
		t.Error("unclamped placement should not draw a correction arrow")
	}
}

func TestRenderClampedDrawsCorrection(t *testing.T) {
	out := string(Render(testMonitors, []Item{{
		Name:       "menu",
		AttachRect: geom.Rect{X: 700, Y: 100, W: 40, H: 20},
		Size:       geom.Size{W: 200, H: 100},
		Result:     attach.Result{X: 600, Y: 120, OffsetX: -20},
	}}))

	if !strings.Contains(out, `class="correction"`) {
		t.Error("clamped placement should draw a correction arrow")
	}
}

func TestRenderFlippedWindowClass(t *testing.T) {
	out := string(Render(testMonitors, []Item{{
		Name:       "menu",
		AttachRect: geom.Rect{X: 100, Y: 500, W: 40, H: 20},
		Size:       geom.Size{W: 120, H: 200},
		Result:     attach.Result{X: 60, Y: 300, FlippedY: true},
	}}))

	if !strings.Contains(out, `class="window flipped"`) {
		t.Error("flipped placement should carry the flipped class")
	}
}

func TestRenderLabels(t *testing.T) {
	items := []Item{{
		Name:       "menu",
		AttachRect: geom.Rect{X: 100, Y: 100, W: 40, H: 20},
		Size:       geom.Size{W: 120, H: 200},
		Result:     attach.Result{X: 60, Y: 120, OffsetX: -20, OffsetY: 5},
	}}

	plain := string(Render(testMonitors, items))
	if strings.Contains(plain, `class="label"`) {
		t.Error("labels should be off by default")
	}

	labeled := string(Render(testMonitors, items, WithLabels()))
	if !strings.Contains(labeled, "menu (-20,+5)") {
		t.Error("labeled output missing window name with correction offsets")
	}
	if !strings.Contains(labeled, ">primary<") {
		t.Error("labeled output missing monitor name")
	}
}

func TestRenderContentBoxForShadowedWindow(t *testing.T) {
	out := string(Render(testMonitors, []Item{{
		Name:       "menu",
		AttachRect: geom.Rect{X: 100, Y: 100, W: 40, H: 20},
		Size:       geom.Size{W: 120, H: 200},
		Shadow:     geom.Insets{Top: 10, Left: 10, Right: 10, Bottom: 10},
		Result:     attach.Result{X: 60, Y: 120},
	}}))

	if !strings.Contains(out, `class="content"`) {
		t.Error("shadowed window should draw its content box")
	}
}

func TestRenderScaleAffectsCanvas(t *testing.T) {
	half := string(Render(testMonitors, nil))
	full := string(Render(testMonitors, nil, WithScale(1)))

	if !strings.Contains(half, `width="400"`) {
		t.Error("default scale should halve the 800px canvas")
	}
	if !strings.Contains(full, `width="800"`) {
		t.Error("scale 1 should keep the 800px canvas")
	}
}
