// Package observability provides hooks for instrumenting the placement
// engine without adding hard dependencies on a metrics or tracing
// backend.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs, ...)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    // ... run application
//	}
//
// The orchestration layer emits events:
//
//	observability.Placement().OnResolve(result)
//	observability.Placement().OnMove(windowID, result)
package observability

import (
	"sync"

	"github.com/perchkit/perch/pkg/attach"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from placement resolution and window
// moves. Implementations must be safe for concurrent use if placements
// happen on more than one goroutine.
type PlacementHooks interface {
	// OnResolve records a completed resolution.
	OnResolve(res attach.Result)

	// OnMove records a window being moved to a resolved position.
	OnMove(windowID string, res attach.Result)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnResolve(attach.Result)      {}
func (NoopPlacementHooks) OnMove(string, attach.Result) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any placements.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
}
