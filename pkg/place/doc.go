// Package place glues the placement engine to a windowing backend.
//
// The engine itself ([github.com/perchkit/perch/pkg/attach]) is a pure
// computation; this package sequences the synchronous queries around it:
// read the window's current geometry, find the monitor workarea under
// the attachment rectangle's center, resolve, move the window, and fire
// the descriptor's position callback with the outcome.
//
// Backends plug in through two small interfaces, [Window] and
// [Monitors]. The perch repository ships a simulated backend in
// [github.com/perchkit/perch/pkg/sim]; a real toolkit would implement
// the same interfaces over its native window handles.
//
// Failures in the collaborators are soft: a missing monitor means the
// resolution simply runs unbounded (no flipping, no clamping), with a
// warning on the mover's logger. A descriptor without an attachment
// rectangle makes MoveWindow a no-op, mirroring how menu code calls it
// unconditionally during teardown.
package place
