// Package observability provides hooks for build progress reporting.
//
// The update walk emits events as it visits targets and runs commands.
// This package decouples those events from any particular output style:
// the core stays print-free, and consumers register hooks at startup to
// receive events. The CLI uses this to echo commands and paint per-target
// results; tests use it to record event sequences.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for build events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the build core free of presentation concerns
//   - Allows different frontends (CLI styling, structured logs, test probes)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// The build core calls hooks to emit events:
//
//	observability.Build().OnCommandStart(ctx, target, command)
//	// ... run the command ...
//	observability.Build().OnCommandComplete(ctx, target, command, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from the update walk.
type BuildHooks interface {
	// Target events. OnTargetComplete reports whether commands ran for
	// the target; a memoized revisit within one update emits no events.
	OnTargetStart(ctx context.Context, name string)
	OnTargetComplete(ctx context.Context, name string, updated bool, duration time.Duration, err error)

	// Command events, one pair per executed command string.
	OnCommandStart(ctx context.Context, target, command string)
	OnCommandComplete(ctx context.Context, target, command string, duration time.Duration, err error)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnTargetStart(context.Context, string)                               {}
func (NoopBuildHooks) OnTargetComplete(context.Context, string, bool, time.Duration, error) {
}
func (NoopBuildHooks) OnCommandStart(context.Context, string, string) {}
func (NoopBuildHooks) OnCommandComplete(context.Context, string, string, time.Duration, error) {
}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any update runs.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
}
