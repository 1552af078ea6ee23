package cardcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCacheMiss(t *testing.T) {
	_, rdb := setupRedis(t)
	c := NewWithClient(rdb, time.Minute)

	b, ok, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestCacheSetGet(t *testing.T) {
	mr, rdb := setupRedis(t)
	c := NewWithClient(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte{0x89, 'P', 'N', 'G'}))

	b, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b)

	assert.True(t, mr.Exists(keyPrefix+"k"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"k"))
}

func TestCacheExpires(t *testing.T) {
	mr, rdb := setupRedis(t)
	c := NewWithClient(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheErrorsWhenServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), time.Minute)
	mr.Close()

	_, _, err = c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "k", []byte("v")))
}

func TestNewPings(t *testing.T) {
	mr, _ := setupRedis(t)

	c, err := New(context.Background(), Options{Addr: mr.Addr(), TTL: time.Hour})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, err = New(context.Background(), Options{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.NotEqual(t, Key("png", "x"), Key("svg", "x"))
	assert.Len(t, Key(), 64)
}
