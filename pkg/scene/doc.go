// Package scene loads placement scenes from TOML or JSON files and
// builds them into a simulated display ready for resolution.
//
// A scene names the monitors of a display, an optional tree of
// coordinate frames, a set of windows, and the placements to perform.
// The CLI reads scenes to drive batch resolution and rendering; tests
// build scenes inline with literals.
//
// # Format
//
// The TOML form of a minimal scene:
//
//	[[monitors]]
//	name = "primary"
//	geometry = { x = 0, y = 0, w = 1920, h = 1080 }
//	workarea = { x = 0, y = 30, w = 1920, h = 1050 }
//
//	[[windows]]
//	name = "menu"
//	size = { w = 200, h = 320 }
//
//	[[placements]]
//	window = "menu"
//	rect = { x = 40, y = 40, w = 120, h = 24 }
//	rect_anchor = "bottom-left"
//	window_anchor = "top-left"
//
// The JSON form mirrors the same field names. Anchors use the names
// accepted by [github.com/perchkit/perch/pkg/anchor.Parse]; flip hints
// default to true on both axes when omitted.
package scene
