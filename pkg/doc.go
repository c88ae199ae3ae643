// Package pkg provides the core libraries for Perch window placement.
//
// # Overview
//
// Perch places floating windows (menus, popovers, tooltips) relative to
// anchor rectangles, flipping and clamping them to stay on the monitor.
// The pkg directory is organized into layers:
//
//  1. [geom], [anchor] - Geometry primitives and anchor algebra
//  2. [attach] - The placement descriptor and the pure resolver
//  3. [place] - Move orchestration over backend interfaces
//  4. [sim], [scene] - Simulated display backend and scene files
//  5. [render] - SVG output and format conversion
//
// # Architecture
//
// The typical data flow through Perch:
//
//	Scene file (.toml/.json)
//	         ↓
//	scene.Build → sim.Display + attach.Params
//	         ↓
//	place.Mover.MoveWindow → attach.Resolve
//	         ↓
//	sim.Window moved + render/svgsink drawing
//
// The resolver itself is a pure function: everything it needs arrives
// as arguments, and backends only plug in at the place layer.
//
// [geom]: github.com/perchkit/perch/pkg/geom
// [anchor]: github.com/perchkit/perch/pkg/anchor
// [attach]: github.com/perchkit/perch/pkg/attach
// [place]: github.com/perchkit/perch/pkg/place
// [sim]: github.com/perchkit/perch/pkg/sim
// [scene]: github.com/perchkit/perch/pkg/scene
// [render]: github.com/perchkit/perch/pkg/render
package pkg
