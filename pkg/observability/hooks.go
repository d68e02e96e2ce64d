// Package observability lets a host receive events from bridges without
// bridges depending on a metrics or tracing backend.
//
// Three hook sets exist: [DocumentHooks] for loading and serializing,
// [TransportHooks] for posting to a renderer, and [CacheHooks] for the
// delivery cache. Each defaults to a no-op and is replaced once at startup:
//
//	observability.SetTransportHooks(myHooks)
//
// Libraries fetch the current set on every event:
//
//	observability.Transport().OnResponse(ctx, path, status, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// DocumentHooks receives events about datasets and documents.
type DocumentHooks interface {
	OnLoad(ctx context.Context, path string, vertices, edges int, duration time.Duration, err error)
	OnSerialize(ctx context.Context, visual string, size int, err error)
}

// TransportHooks receives one OnAttempt per HTTP attempt followed by either
// OnResponse or OnError.
type TransportHooks interface {
	OnAttempt(ctx context.Context, path string, attempt int)
	OnResponse(ctx context.Context, path string, status int, duration time.Duration)
	OnError(ctx context.Context, path string, err error)
}

// CacheHooks receives delivery cache events.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnLoad(context.Context, string, int, int, time.Duration, error) {}
func (NoopDocumentHooks) OnSerialize(context.Context, string, int, error)                {}

type NoopTransportHooks struct{}

func (NoopTransportHooks) OnAttempt(context.Context, string, int)                 {}
func (NoopTransportHooks) OnResponse(context.Context, string, int, time.Duration) {}
func (NoopTransportHooks) OnError(context.Context, string, error)                 {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	hooksMu        sync.RWMutex
	documentHooks  DocumentHooks  = NoopDocumentHooks{}
	transportHooks TransportHooks = NoopTransportHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
)

// SetDocumentHooks registers h; nil is ignored.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// SetTransportHooks registers h; nil is ignored.
func SetTransportHooks(h TransportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transportHooks = h
	}
}

// SetCacheHooks registers h; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

func Transport() TransportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transportHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	documentHooks = NoopDocumentHooks{}
	transportHooks = NoopTransportHooks{}
	cacheHooks = NoopCacheHooks{}
}
