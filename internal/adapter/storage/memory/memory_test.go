package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestDurableStore_SetGetOverwrite(t *testing.T) {
	store := NewDurableBackend().ForSession("s1")
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "transactionId")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "transactionId", "TX-1"))
	require.NoError(t, store.Set(ctx, "transactionId", "TX-2"))

	v, ok, err := store.Get(ctx, "transactionId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TX-2", v)
}

func TestDurableBackend_SessionsAreIsolated(t *testing.T) {
	backend := NewDurableBackend()
	ctx := context.Background()

	require.NoError(t, backend.ForSession("a").Set(ctx, "cartItem", "[]"))

	_, ok, err := backend.ForSession("b").Get(ctx, "cartItem")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDurableBackend_Clear(t *testing.T) {
	backend := NewDurableBackend()
	ctx := context.Background()
	require.NoError(t, backend.ForSession("a").Set(ctx, "email", "x"))
	require.NoError(t, backend.ForSession("b").Set(ctx, "email", "y"))

	backend.Clear("a")

	_, ok, _ := backend.ForSession("a").Get(ctx, "email")
	assert.False(t, ok)
	v, ok, _ := backend.ForSession("b").Get(ctx, "email")
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestDurableBackend_EvictsLeastRecentSession(t *testing.T) {
	backend := NewDurableBackend(WithMaxSessions(2))
	ctx := context.Background()

	require.NoError(t, backend.ForSession("a").Set(ctx, "email", "a"))
	require.NoError(t, backend.ForSession("b").Set(ctx, "email", "b"))
	// Reading a makes b the least recently used.
	_, ok, _ := backend.ForSession("a").Get(ctx, "email")
	require.True(t, ok)
	require.NoError(t, backend.ForSession("c").Set(ctx, "email", "c"))

	assert.Equal(t, 2, backend.Len())
	_, ok, _ = backend.ForSession("b").Get(ctx, "email")
	assert.False(t, ok)
	v, ok, _ := backend.ForSession("a").Get(ctx, "email")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestWithMaxSessions_IgnoresNonPositive(t *testing.T) {
	backend := NewDurableBackend(WithMaxSessions(0))
	require.NoError(t, backend.ForSession("a").Set(context.Background(), "email", "a"))
	assert.Equal(t, 1, backend.Len())
}

func TestCookieStore_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	backend := NewCookieBackend(clock.Now)
	store := backend.ForSession("s1")
	ctx := context.Background()

	expiresAt := clock.Now().Add(10 * time.Minute)
	require.NoError(t, store.Set(ctx, "accessToken", "tok", expiresAt))

	got, ok := backend.ExpiresAt("s1", "accessToken")
	require.True(t, ok)
	assert.Equal(t, expiresAt, got)

	clock.Advance(10*time.Minute - time.Millisecond)
	v, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	clock.Advance(time.Millisecond)
	_, ok, err = store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok, "cookie is absent from its expiry instant on")
}

func TestCookieStore_SessionCookieNeverExpires(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewCookieBackend(clock.Now).ForSession("s1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "email", "a@x.com", time.Time{}))
	clock.Advance(365 * 24 * time.Hour)

	v, ok, err := store.Get(ctx, "email")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", v)
}

func TestCookieStore_PastExpiryIsAbsent(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewCookieBackend(clock.Now).ForSession("s1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accessToken", "tok", clock.Now().Add(-time.Minute)))

	_, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}
