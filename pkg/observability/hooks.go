// Package observability provides hooks for logging and metrics around the
// pattern enumeration core.
//
// The core packages never log. Instead they report events through hook
// interfaces with no-op defaults, and the application registers concrete
// implementations at startup (the CLI forwards them to its logger).
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    observability.SetOutputHooks(&myOutputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tree().OnBuildStart(ctx, "canonical")
//	// ... build the tree ...
//	observability.Tree().OnBuildComplete(ctx, "canonical", nodeCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tree Hooks
// =============================================================================

// TreeHooks receives events about building and walking pattern trees.
type TreeHooks interface {
	// OnBuildStart records the start of a tree build for the named table kind.
	OnBuildStart(ctx context.Context, kind string)

	// OnBuildComplete records a finished build with the number of non-root nodes.
	OnBuildComplete(ctx context.Context, kind string, nodes int, duration time.Duration)

	// OnCountComplete records a finished per-length count.
	OnCountComplete(ctx context.Context, total int, duration time.Duration)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events from the exporter and the random sampler.
type OutputHooks interface {
	// OnExportComplete records an export with the number of records written.
	OnExportComplete(ctx context.Context, records int, duration time.Duration, err error)

	// OnSampleComplete records a sampling request.
	OnSampleComplete(ctx context.Context, length, count int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnBuildStart(context.Context, string)                        {}
func (NoopTreeHooks) OnBuildComplete(context.Context, string, int, time.Duration) {}
func (NoopTreeHooks) OnCountComplete(context.Context, int, time.Duration)         {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnExportComplete(context.Context, int, time.Duration, error)      {}
func (NoopOutputHooks) OnSampleComplete(context.Context, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	treeHooks   TreeHooks   = NoopTreeHooks{}
	outputHooks OutputHooks = NoopOutputHooks{}
	hooksMu     sync.RWMutex
)

// SetTreeHooks registers custom tree hooks.
// This should be called once at application startup before any tree is built.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
// This should be called once at application startup before any export or sampling.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	treeHooks = NoopTreeHooks{}
	outputHooks = NoopOutputHooks{}
}
