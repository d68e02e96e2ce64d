// Package cache remembers which documents have already been delivered.
//
// The push command hashes every serialized document with [DocumentKey] and
// records accepted uploads in a [Cache]. An identical document pushed again
// within the TTL is skipped. Three backends exist:
//
//   - [NullCache]: never hits; used when caching is disabled
//   - [FileCache]: JSON entry files under the user cache directory
//   - [RedisCache]: a shared Redis instance, for teams pushing from CI
//
// All backends treat a zero TTL as "never expires".
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// NullCache stores nothing.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
