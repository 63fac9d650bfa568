package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdportal/portal-service/internal/infrastructure/cache/memory"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newCache(t *testing.T, size int) (*memory.Cache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, err := memory.NewCache(memory.Config{Size: size, DefaultTTL: time.Minute, Now: clock.Now})
	require.NoError(t, err)
	return c, clock
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

	result, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), result)
}

func TestCache_GetReturnsCopy(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

	result, _ := c.Get(ctx, "key")
	result[0] = 'X'

	again, _ := c.Get(ctx, "key")
	assert.Equal(t, []byte("value"), again)
}

func TestCache_GetNotFound(t *testing.T) {
	c, _ := newCache(t, 10)

	result, err := c.Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestCache_Expiry(t *testing.T) {
	c, clock := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "short", []byte("v"), time.Second))
	require.NoError(t, c.Set(ctx, "default", []byte("v"), 0))

	clock.Advance(2 * time.Second)

	short, _ := c.Get(ctx, "short")
	assert.Nil(t, short)
	def, _ := c.Get(ctx, "default")
	assert.NotNil(t, def)

	clock.Advance(time.Minute)
	def, _ = c.Get(ctx, "default")
	assert.Nil(t, def)
}

func TestCache_NegativeTTLNeverExpires(t *testing.T) {
	c, clock := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("v"), -1))

	clock.Advance(365 * 24 * time.Hour)

	result, _ := c.Get(ctx, "key")
	assert.Equal(t, []byte("v"), result)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newCache(t, 2)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	_, _ = c.Get(ctx, "a")
	require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))

	a, _ := c.Get(ctx, "a")
	b, _ := c.Get(ctx, "b")
	assert.NotNil(t, a)
	assert.Nil(t, b)
	assert.Equal(t, 2, c.Len())
}

func TestCache_Delete(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("v"), 0))

	deleted, err := c.Delete(ctx, "key")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.Delete(ctx, "key")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCache_IncrementWindow(t *testing.T) {
	c, clock := newCache(t, 10)
	ctx := context.Background()

	n, err := c.Increment(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	clock.Advance(6 * time.Second)
	n, err = c.Increment(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	clock.Advance(5 * time.Second)
	n, err = c.Increment(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "window is fixed from the first increment")
}

func TestCache_IncrementNonCounter(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("text"), 0))

	_, err := c.Increment(ctx, "key", 0)

	assert.Error(t, err)
}

func TestCache_IncrementConcurrent(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Increment(ctx, "counter", time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	value, _ := c.Get(ctx, "counter")
	assert.Equal(t, fmt.Sprint(50), string(value))
}

func TestCache_DecrementKeepsWindow(t *testing.T) {
	c, clock := newCache(t, 10)
	ctx := context.Background()

	_, err := c.Increment(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	_, err = c.Increment(ctx, "counter", 10*time.Second)
	require.NoError(t, err)

	n, err := c.Decrement(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	clock.Advance(11 * time.Second)
	value, err := c.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Nil(t, value, "decrement does not extend the window")
}

func TestCache_DecrementToZeroRemoves(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()

	n, err := c.Decrement(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 0, c.Len())

	_, err = c.Increment(ctx, "counter", time.Minute)
	require.NoError(t, err)
	n, err = c.Decrement(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 0, c.Len())
}

func TestCache_DecrementNonCounter(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("text"), 0))

	_, err := c.Decrement(ctx, "key")

	assert.Error(t, err)
}

func TestCache_PingAndClose(t *testing.T) {
	c, _ := newCache(t, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", []byte("v"), 0))

	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
	assert.Equal(t, 0, c.Len())
}
