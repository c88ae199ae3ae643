// Package render provides output rendering for resolved placements.
//
// The [svgsink] subpackage draws a resolved scene as an SVG document:
// monitor workareas, attachment rectangles, window boxes, and clamp
// corrections. This package adds generic format conversion on top:
// [ToPDF] and [ToPNG] convert any SVG to other formats using the
// external rsvg-convert tool (from librsvg).
//
//	svg := svgsink.Render(monitors, items)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [svgsink]: github.com/perchkit/perch/pkg/render/svgsink
package render
