// Package observability provides hooks for metrics and logging.
//
// Hooks let the service instrument pipeline execution and cache traffic
// without the library packages depending on a metrics backend. The main
// package registers implementations at startup; libraries emit events:
//
//	observability.Pipeline().OnConvertStart(ctx, sourceID, converter)
//	// ... convert ...
//	observability.Pipeline().OnConvertComplete(ctx, sourceID, converter, n, duration, err)
//
// Defaults are no-ops, so unregistered hooks cost one interface call.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the convert → walk pipeline.
type PipelineHooks interface {
	// Convert events
	OnConvertStart(ctx context.Context, sourceID, converter string)
	OnConvertComplete(ctx context.Context, sourceID, converter string, digitCount int, duration time.Duration, err error)

	// Walk events
	OnWalkStart(ctx context.Context, sourceID string, digitCount int)
	OnWalkComplete(ctx context.Context, sourceID string, pointCount int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnConvertStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnConvertComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnWalkStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnWalkComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Call once at startup
// before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Call once at startup before
// any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
