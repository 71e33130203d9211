package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"checkout-persistence/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func hostPort(t *testing.T, mr *miniredis.Miniredis) (string, int) {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return mr.Host(), port
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := hostPort(t, mr)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, NewHealthCheck(client).Ping(context.Background()))
	assert.Equal(t, "redis", NewHealthCheck(client).Name())
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := hostPort(t, mr)
	mr.Close()

	_, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port}, zerolog.Nop())
	assert.ErrorContains(t, err, "pinging redis")
}

func TestDurableStore_SetAndGet(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewDurableStore(client).ForSession("sess-1")
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "transactionId")
	require.NoError(t, err)
	assert.False(t, ok, "absent key is not an error")

	require.NoError(t, store.Set(ctx, "transactionId", "TX-42"))

	v, ok, err := store.Get(ctx, "transactionId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TX-42", v)

	raw, err := mr.Get("ckp:durable:sess-1:transactionId")
	require.NoError(t, err)
	assert.Equal(t, "TX-42", raw)
	assert.Zero(t, mr.TTL("ckp:durable:sess-1:transactionId"), "durable values carry no TTL")
}

func TestDurableStore_Overwrite(t *testing.T) {
	_, client := newTestClient(t)
	store := NewDurableStore(client).ForSession("sess-1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cartItem", `[{"id":"a"}]`))
	require.NoError(t, store.Set(ctx, "cartItem", `[]`))

	v, _, err := store.Get(ctx, "cartItem")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestDurableStore_SessionIsolation(t *testing.T) {
	_, client := newTestClient(t)
	factory := NewDurableStore(client)
	ctx := context.Background()

	require.NoError(t, factory.ForSession("a").Set(ctx, "email", "a@x.com"))

	_, ok, err := factory.ForSession("b").Get(ctx, "email")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDurableStore_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewDurableStore(client).ForSession("sess-1")
	mr.Close()

	_, _, err := store.Get(context.Background(), "cartItem")
	assert.ErrorContains(t, err, "redis durable get cartItem")
	assert.Error(t, store.Set(context.Background(), "cartItem", "[]"))
}

func TestCookieStore_TTLFromExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	now := time.Unix(1_700_000_000, 0)
	factory := NewCookieStore(client, 0)
	factory.now = func() time.Time { return now }
	store := factory.ForSession("sess-1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accessToken", "tok", now.Add(10*time.Minute)))

	assert.Equal(t, 10*time.Minute, mr.TTL("ckp:cookie:sess-1:accessToken"))

	v, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	mr.FastForward(10 * time.Minute)

	_, ok, err = store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok, "expired cookie reads as absent")
}

func TestCookieStore_PastExpiryRemovesValue(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewCookieStore(client, 0).ForSession("sess-1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accessToken", "old", time.Time{}))
	require.NoError(t, store.Set(ctx, "accessToken", "new", time.Now().Add(-time.Minute)))

	assert.False(t, mr.Exists("ckp:cookie:sess-1:accessToken"))
	_, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCookieStore_SessionCookieUsesSessionTTL(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewCookieStore(client, 24*time.Hour).ForSession("sess-1")

	require.NoError(t, store.Set(context.Background(), "email", "a@x.com", time.Time{}))

	assert.Equal(t, 24*time.Hour, mr.TTL("ckp:cookie:sess-1:email"))
}
