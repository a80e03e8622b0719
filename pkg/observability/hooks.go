// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages emit events through hook interfaces; nothing here depends
// on a particular backend. The defaults are no-ops, so instrumentation costs
// nothing until an application registers its own hooks at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, "TB", vertexCount)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(ctx, "TB", result, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphStats is a size snapshot of a board graph.
type GraphStats struct {
	Vertices int
	Edges    int
}

// GraphHooks receives events when a session's current graph changes.
type GraphHooks interface {
	// OnGraphUpdate records a replacement of the current graph. ops is the
	// number of operations applied, zero for a wholesale replacement.
	OnGraphUpdate(ctx context.Context, ops int, before, after GraphStats)

	// OnBoardLoad records loading a board file.
	OnBoardLoad(ctx context.Context, path string, facts int, duration time.Duration, err error)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutResult summarises a finished layout.
type LayoutResult struct {
	Nodes      int // emitted node descriptors
	Edges      int // emitted edge descriptors
	Ranks      int
	BendPoints int // synthetic nodes inserted on long edges
	Crossings  int // crossings left after ordering
}

// LayoutHooks receives events from the layout transform.
type LayoutHooks interface {
	OnLayoutStart(ctx context.Context, direction string, vertexCount int)
	OnLayoutComplete(ctx context.Context, direction string, result LayoutResult, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from diagram rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnGraphUpdate(context.Context, int, GraphStats, GraphStats)     {}
func (NoopGraphHooks) OnBoardLoad(context.Context, string, int, time.Duration, error) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, string, int) {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, string, LayoutResult, time.Duration, error) {
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks  GraphHooks  = NoopGraphHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	layoutHooks = NoopLayoutHooks{}
	renderHooks = NoopRenderHooks{}
}
