// Package memory provides an in-process cache backed by a bounded LRU.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gdportal/portal-service/internal/core/cache"
)

// DefaultSize is the entry limit used when none is configured.
const DefaultSize = 10000

// Config holds the memory cache configuration.
type Config struct {
	Size       int
	DefaultTTL time.Duration
	// Now replaces the clock, mainly for tests.
	Now func() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache implements cache.Cache in process memory. Entries are evicted in
// LRU order once Size is reached and lazily when read after their TTL.
type Cache struct {
	mu         sync.Mutex
	entries    *lru.Cache[string, entry]
	defaultTTL time.Duration
	now        func() time.Time
}

var _ cache.Cache = (*Cache)(nil)

// NewCache creates a new memory cache.
func NewCache(cfg Config) (*Cache, error) {
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Cache{
		entries:    entries,
		defaultTTL: cfg.DefaultTTL,
		now:        now,
	}, nil
}

// lookup returns the live entry for key, dropping it if expired. Callers hold mu.
func (c *Cache) lookup(key string) (entry, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return entry{}, false
	}
	if e.expired(c.now()) {
		c.entries.Remove(key)
		return entry{}, false
	}
	return e, true
}

func (c *Cache) expiry(ttl time.Duration) time.Time {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(ttl)
}

// Get retrieves a value by key.
func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lookup(key)
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores a value with an optional TTL.
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, entry{
		value:     append([]byte(nil), value...),
		expiresAt: c.expiry(ttl),
	})
	return nil
}

// Delete removes a key.
func (c *Cache) Delete(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, live := c.lookup(key)
	c.entries.Remove(key)
	return live, nil
}

// Increment adds one to the counter at key. The expiry is fixed when the
// counter is created.
func (c *Cache) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lookup(key)
	if !ok {
		e = entry{expiresAt: c.expiry(ttl)}
	}

	var count int64
	if len(e.value) > 0 {
		n, err := strconv.ParseInt(string(e.value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at key %s is not a counter", key)
		}
		count = n
	}
	count++

	e.value = []byte(strconv.FormatInt(count, 10))
	c.entries.Add(key, e)
	return count, nil
}

// Decrement subtracts one from the counter at key, keeping its expiry.
func (c *Cache) Decrement(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lookup(key)
	if !ok {
		return 0, nil
	}

	count, err := strconv.ParseInt(string(e.value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value at key %s is not a counter", key)
	}
	count--

	if count <= 0 {
		c.entries.Remove(key)
		return 0, nil
	}
	e.value = []byte(strconv.FormatInt(count, 10))
	c.entries.Add(key, e)
	return count, nil
}

// Ping always succeeds.
func (c *Cache) Ping(context.Context) error {
	return nil
}

// Close drops all entries.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *Cache) Len() int {
	return c.entries.Len()
}
