// Package cache defines the cache interface shared by the cache backends.
package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns nil if the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the default TTL is used.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Increment atomically adds one to the counter stored at key and returns
	// the new value. The TTL starts when the counter is created and is not
	// extended by later increments.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Decrement atomically subtracts one from the counter stored at key and
	// returns the new value. A counter reaching zero is removed; a missing
	// key yields 0 and is not created.
	Decrement(ctx context.Context, key string) (int64, error)

	// Ping checks if the cache is reachable.
	Ping(ctx context.Context) error

	// Close releases the cache resources.
	Close() error
}
