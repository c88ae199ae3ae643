package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/perchkit/perch/pkg/geom"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"resolve", "scene", "render", "preview", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestBuildParams(t *testing.T) {
	opts := &resolveOpts{
		rect:         "40,40,120,24",
		size:         "200,320",
		shadow:       "5,5,5,5",
		offset:       "0,4",
		bounds:       "0,0,1920,1080",
		rectAnchor:   "bottom-left",
		windowAnchor: "top-left",
		noFlipY:      true,
	}

	p, size, shadow, bounds, err := buildParams(opts)
	if err != nil {
		t.Fatalf("buildParams failed: %v", err)
	}

	rect, ok := p.AttachRect()
	if !ok || rect != (geom.Rect{X: 40, Y: 40, W: 120, H: 24}) {
		t.Errorf("attach rect = %v, %t", rect, ok)
	}
	if size != (geom.Size{W: 200, H: 320}) {
		t.Errorf("size = %v", size)
	}
	if shadow != (geom.Insets{Top: 5, Left: 5, Right: 5, Bottom: 5}) {
		t.Errorf("shadow = %v", shadow)
	}
	if bounds == nil || *bounds != (geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}) {
		t.Errorf("bounds = %v", bounds)
	}

	flipX, flipY := p.FlipHints()
	if !flipX || flipY {
		t.Errorf("flip hints = %t, %t; want true, false", flipX, flipY)
	}
	if dx, dy := p.Offset(); dx != 0 || dy != 4 {
		t.Errorf("offset = %d, %d", dx, dy)
	}
}

func TestBuildParamsUnboundedByDefault(t *testing.T) {
	_, _, _, bounds, err := buildParams(&resolveOpts{rect: "0,0,10,10", size: "5,5"})
	if err != nil {
		t.Fatalf("buildParams failed: %v", err)
	}
	if bounds != nil {
		t.Errorf("bounds = %v, want nil", bounds)
	}
}

func TestBuildParamsRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		opts resolveOpts
	}{
		{"bad rect", resolveOpts{rect: "1,2", size: "5,5"}},
		{"bad size", resolveOpts{rect: "0,0,10,10", size: "wide"}},
		{"bad anchor", resolveOpts{rect: "0,0,10,10", size: "5,5", rectAnchor: "nowhere"}},
		{"bad shadow", resolveOpts{rect: "0,0,10,10", size: "5,5", shadow: "1,2"}},
		{"bad bounds", resolveOpts{rect: "0,0,10,10", size: "5,5", bounds: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, _, err := buildParams(&tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

const testScene = `
[[monitors]]
name = "primary"
geometry = { x = 0, y = 0, w = 1920, h = 1080 }

[[windows]]
name = "menu"
size = { w = 200, h = 320 }

[[placements]]
window = "menu"
rect = { x = 40, y = 40, w = 120, h = 24 }
rect_anchor = "bottom-left"
window_anchor = "top-left"
`

func TestResolveScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := newTestCLI().resolveScene(path)
	if err != nil {
		t.Fatalf("resolveScene failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Window != "menu" {
		t.Errorf("window = %q, want %q", results[0].Window, "menu")
	}
	if got := results[0].Result.Origin(); got != (geom.Point{X: 40, Y: 64}) {
		t.Errorf("origin = %v, want (40, 64)", got)
	}
}

func TestResolveSceneMissingFile(t *testing.T) {
	if _, err := newTestCLI().resolveScene(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing scene file")
	}
}
