// Package svgsink renders resolved placements as standalone SVG
// documents: monitor workareas, attachment rectangles, window boxes,
// and the correction applied by clamping. The CLI writes these for
// visual inspection of scene files.
package svgsink

import (
	"bytes"
	"fmt"

	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
	"github.com/perchkit/perch/pkg/sim"
)

const sceneCSS = `
    .monitor { fill: #1e1e2e; stroke: #45475a; stroke-width: 2; }
    .workarea { fill: #313244; stroke: none; }
    .attach { fill: none; stroke: #f9e2af; stroke-width: 2; stroke-dasharray: 6 3; }
    .window { fill: #89b4fa; fill-opacity: 0.35; stroke: #89b4fa; stroke-width: 2; }
    .content { fill: none; stroke: #cdd6f4; stroke-width: 1; stroke-dasharray: 2 2; }
    .correction { stroke: #f38ba8; stroke-width: 2; marker-end: url(#arrow); }
    .label { fill: #cdd6f4; font-family: monospace; font-size: 12px; }
    .flipped { stroke: #a6e3a1; }`

// Item is one resolved placement to draw.
type Item struct {
	// Name labels the window in the drawing.
	Name string

	// AttachRect is the attachment rectangle in root coordinates.
	AttachRect geom.Rect

	// Size and Shadow describe the window's outer box.
	Size   geom.Size
	Shadow geom.Insets

	// Result is the resolution outcome for the item.
	Result attach.Result
}

type Option func(*renderer)

// WithScale sets the root-pixels-to-SVG-units factor. Default 0.5.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithLabels draws window names and correction offsets.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

type renderer struct {
	scale  float64
	labels bool
}

// Render draws the monitors and items into a complete SVG document.
// The canvas is sized to the union of the monitor geometries.
func Render(monitors []sim.Monitor, items []Item, opts ...Option) []byte {
	r := renderer{scale: 0.5}
	for _, opt := range opts {
		opt(&r)
	}

	canvas := boundingBox(monitors, items)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.s(canvas.X), r.s(canvas.Y), r.s(canvas.W), r.s(canvas.H), r.s(canvas.W), r.s(canvas.H))
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sceneCSS)
	renderDefs(&buf)

	for _, m := range monitors {
		r.renderRect(&buf, m.Geometry, "monitor")
		r.renderRect(&buf, m.Workarea, "workarea")
		if r.labels {
			r.renderLabel(&buf, m.Workarea.X+8, m.Workarea.Y+16, m.Name)
		}
	}

	for _, it := range items {
		r.renderItem(&buf, it)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="#f38ba8"/>
    </marker>
  </defs>
`)
}

func (r *renderer) renderItem(buf *bytes.Buffer, it Item) {
	r.renderRect(buf, it.AttachRect, "attach")

	outer := geom.Rect{X: it.Result.X, Y: it.Result.Y, W: it.Size.W, H: it.Size.H}
	class := "window"
	if it.Result.FlippedX || it.Result.FlippedY {
		class = "window flipped"
	}
	r.renderRect(buf, outer, class)
	if !it.Shadow.IsZero() {
		r.renderRect(buf, outer.Inset(it.Shadow), "content")
	}

	if it.Result.Clamped() {
		// The correction arrow points from where the window would have
		// landed without clamping to where it actually is.
		rawX := it.Result.X - it.Result.OffsetX
		rawY := it.Result.Y - it.Result.OffsetY
		fmt.Fprintf(buf, `  <line class="correction" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			r.s(rawX), r.s(rawY), r.s(it.Result.X), r.s(it.Result.Y))
	}

	if r.labels {
		label := it.Name
		if it.Result.Clamped() {
			label = fmt.Sprintf("%s (%+d,%+d)", it.Name, it.Result.OffsetX, it.Result.OffsetY)
		}
		r.renderLabel(buf, outer.X+4, outer.Y+14, label)
	}
}

func (r *renderer) renderRect(buf *bytes.Buffer, rect geom.Rect, class string) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		class, r.s(rect.X), r.s(rect.Y), r.s(rect.W), r.s(rect.H))
}

func (r *renderer) renderLabel(buf *bytes.Buffer, x, y int, text string) {
	fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f">%s</text>`+"\n", r.s(x), r.s(y), text)
}

func (r *renderer) s(v int) float64 { return float64(v) * r.scale }

// boundingBox unions monitor geometries and item boxes so off-screen
// placements stay visible.
func boundingBox(monitors []sim.Monitor, items []Item) geom.Rect {
	var rects []geom.Rect
	for _, m := range monitors {
		rects = append(rects, m.Geometry)
	}
	for _, it := range items {
		rects = append(rects, it.AttachRect, geom.Rect{X: it.Result.X, Y: it.Result.Y, W: it.Size.W, H: it.Size.H})
	}
	if len(rects) == 0 {
		return geom.Rect{W: 100, H: 100}
	}

	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].MaxX(), rects[0].MaxY()
	for _, rc := range rects[1:] {
		minX = min(minX, rc.X)
		minY = min(minY, rc.Y)
		maxX = max(maxX, rc.MaxX())
		maxY = max(maxY, rc.MaxY())
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
