package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *NonceStore) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, &NonceStore{rdb: rdb}
}

func TestNonceStoreRoundTrip(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "wallet-1", "nonce-1", time.Minute))

	nonce, ok, err := store.Get(ctx, "wallet-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nonce-1", nonce)

	require.NoError(t, store.Delete(ctx, "wallet-1"))
	_, ok, err = store.Get(ctx, "wallet-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNonceStoreExpiry(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "wallet-1", "nonce-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "wallet-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
