// Package sim provides an in-memory windowing backend for the placement
// engine: a display with monitors, a tree of coordinate frames, and
// movable windows.
//
// It exists so placements can be exercised, tested, and visualized
// without a real display server. The CLI builds a sim display from a
// scene file; tests build one inline. The types implement the
// collaborator interfaces in [github.com/perchkit/perch/pkg/place]:
//
//   - [Frame] is an attach.Frame: a node in a coordinate-space tree
//     whose ToRoot walks the ancestor chain accumulating offsets.
//   - [Display] is a place.Monitors: point-to-workarea lookup.
//   - [Window] is a place.Window: geometry accessors plus Move.
//
// Windows get stable uuid identifiers so logs, hooks, and callbacks can
// name them across moves.
package sim
