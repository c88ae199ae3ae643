package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/perr"
	"github.com/perchkit/perch/pkg/sim"
)

// =============================================================================
// Scene Description
// =============================================================================

// Scene is the on-disk description of a display and the placements to
// perform on it.
type Scene struct {
	Monitors   []MonitorSpec   `json:"monitors" toml:"monitors"`
	Frames     []FrameSpec     `json:"frames,omitempty" toml:"frames"`
	Windows    []WindowSpec    `json:"windows" toml:"windows"`
	Placements []PlacementSpec `json:"placements" toml:"placements"`
}

// MonitorSpec describes one monitor. Workarea defaults to the full
// geometry when omitted.
type MonitorSpec struct {
	Name     string    `json:"name" toml:"name"`
	Geometry geom.Rect `json:"geometry" toml:"geometry"`
	Workarea geom.Rect `json:"workarea,omitempty" toml:"workarea"`
}

// FrameSpec describes a coordinate frame. An empty Parent attaches the
// frame to the root space; otherwise Parent names an earlier frame.
type FrameSpec struct {
	Name   string     `json:"name" toml:"name"`
	Parent string     `json:"parent,omitempty" toml:"parent"`
	Offset geom.Point `json:"offset" toml:"offset"`
}

// WindowSpec describes a window to create on the display.
type WindowSpec struct {
	Name   string      `json:"name" toml:"name"`
	Size   geom.Size   `json:"size" toml:"size"`
	Shadow geom.Insets `json:"shadow,omitempty" toml:"shadow"`
}

// PlacementSpec describes one placement: which window to put where.
// Anchors use the names accepted by anchor.Parse and default to
// "center". Flip hints default to true when omitted.
type PlacementSpec struct {
	Window       string     `json:"window" toml:"window"`
	Rect         geom.Rect  `json:"rect" toml:"rect"`
	Frame        string     `json:"frame,omitempty" toml:"frame"`
	RectAnchor   string     `json:"rect_anchor,omitempty" toml:"rect_anchor"`
	WindowAnchor string     `json:"window_anchor,omitempty" toml:"window_anchor"`
	FlipX        *bool      `json:"flip_x,omitempty" toml:"flip_x"`
	FlipY        *bool      `json:"flip_y,omitempty" toml:"flip_y"`
	Offset       geom.Point `json:"offset,omitempty" toml:"offset"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads a scene file, picking the decoder from the extension
// (.toml, .json). The scene is validated before it is returned.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrap(perr.ErrCodeFileNotFound, err, "read scene %s", path)
	}

	var s Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "parse TOML scene %s", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "parse JSON scene %s", path)
		}
	default:
		return nil, perr.New(perr.ErrCodeInvalidFormat, "unsupported scene format %q (want .toml or .json)", ext)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &s, nil
}

// ReadJSON decodes and validates a JSON scene from r.
func ReadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, perr.Wrap(perr.ErrCodeInvalidFormat, err, "parse JSON scene")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// WriteJSON encodes a scene as indented JSON. The output round-trips
// through [ReadJSON].
func WriteJSON(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks referential integrity: unique names, frames forming
// a tree over earlier entries, placements naming known windows and
// frames, and parseable anchors.
func (s *Scene) Validate() error {
	if len(s.Monitors) == 0 {
		return perr.New(perr.ErrCodeInvalidScene, "scene has no monitors")
	}

	monitors := make(map[string]bool, len(s.Monitors))
	for i, m := range s.Monitors {
		if m.Name == "" {
			return perr.New(perr.ErrCodeInvalidScene, "monitor %d has no name", i)
		}
		if monitors[m.Name] {
			return perr.New(perr.ErrCodeInvalidScene, "duplicate monitor %q", m.Name)
		}
		if m.Geometry.W <= 0 || m.Geometry.H <= 0 {
			return perr.New(perr.ErrCodeInvalidScene, "monitor %q has empty geometry", m.Name)
		}
		monitors[m.Name] = true
	}

	frames := make(map[string]bool, len(s.Frames))
	for i, f := range s.Frames {
		if f.Name == "" {
			return perr.New(perr.ErrCodeInvalidScene, "frame %d has no name", i)
		}
		if frames[f.Name] {
			return perr.New(perr.ErrCodeInvalidScene, "duplicate frame %q", f.Name)
		}
		// Parents must be declared earlier, which also rules out cycles.
		if f.Parent != "" && !frames[f.Parent] {
			return perr.New(perr.ErrCodeInvalidScene, "frame %q references unknown parent %q", f.Name, f.Parent)
		}
		frames[f.Name] = true
	}

	windows := make(map[string]bool, len(s.Windows))
	for i, w := range s.Windows {
		if w.Name == "" {
			return perr.New(perr.ErrCodeInvalidScene, "window %d has no name", i)
		}
		if windows[w.Name] {
			return perr.New(perr.ErrCodeInvalidScene, "duplicate window %q", w.Name)
		}
		if w.Size.W <= 0 || w.Size.H <= 0 {
			return perr.New(perr.ErrCodeInvalidScene, "window %q has empty size", w.Name)
		}
		windows[w.Name] = true
	}

	for i, p := range s.Placements {
		if !windows[p.Window] {
			return perr.New(perr.ErrCodeInvalidScene, "placement %d references unknown window %q", i, p.Window)
		}
		if p.Frame != "" && !frames[p.Frame] {
			return perr.New(perr.ErrCodeInvalidScene, "placement %d references unknown frame %q", i, p.Frame)
		}
		if _, err := parseAnchor(p.RectAnchor); err != nil {
			return fmt.Errorf("placement %d: rect anchor: %w", i, err)
		}
		if _, err := parseAnchor(p.WindowAnchor); err != nil {
			return fmt.Errorf("placement %d: window anchor: %w", i, err)
		}
	}

	return nil
}

func parseAnchor(s string) (anchor.Anchor, error) {
	if s == "" {
		return anchor.Middle, nil
	}
	return anchor.Parse(s)
}

// =============================================================================
// Building
// =============================================================================

// Placement pairs a built descriptor with the window it targets.
type Placement struct {
	Window *sim.Window
	Name   string
	Params *attach.Params
}

// Built is a scene instantiated on a simulated display.
type Built struct {
	Display    *sim.Display
	Windows    map[string]*sim.Window
	Placements []Placement
}

// Build instantiates the scene: monitors become a display, frames
// become a frame tree, windows are created, and each placement spec
// becomes a ready-to-resolve descriptor.
func (s *Scene) Build() (*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	monitors := make([]sim.Monitor, len(s.Monitors))
	for i, m := range s.Monitors {
		wa := m.Workarea
		if wa.W == 0 && wa.H == 0 {
			wa = m.Geometry
		}
		monitors[i] = sim.Monitor{Name: m.Name, Geometry: m.Geometry, Workarea: wa}
	}
	display := sim.NewDisplay(monitors...)

	frames := make(map[string]*sim.Frame, len(s.Frames))
	for _, f := range s.Frames {
		parent := display.Root()
		if f.Parent != "" {
			parent = frames[f.Parent]
		}
		frames[f.Name] = parent.NewChild(f.Name, f.Offset)
	}

	windows := make(map[string]*sim.Window, len(s.Windows))
	for _, w := range s.Windows {
		windows[w.Name] = display.NewWindow(w.Size, w.Shadow)
	}

	placements := make([]Placement, len(s.Placements))
	for i, spec := range s.Placements {
		p := attach.NewParams()

		var frame attach.Frame
		if spec.Frame != "" {
			frame = frames[spec.Frame]
		}
		p.SetAttachRect(spec.Rect, frame)

		ra, _ := parseAnchor(spec.RectAnchor)
		wa, _ := parseAnchor(spec.WindowAnchor)
		p.SetAnchors(ra, wa)

		flipX, flipY := true, true
		if spec.FlipX != nil {
			flipX = *spec.FlipX
		}
		if spec.FlipY != nil {
			flipY = *spec.FlipY
		}
		p.SetFlipHints(flipX, flipY)
		p.SetOffset(spec.Offset.X, spec.Offset.Y)

		placements[i] = Placement{
			Window: windows[spec.Window],
			Name:   spec.Window,
			Params: p,
		}
	}

	return &Built{Display: display, Windows: windows, Placements: placements}, nil
}
