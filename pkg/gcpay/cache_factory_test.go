package gcpay_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := gcpay.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &gcpay.MemoryCache{}, cache)
	})

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		cache, err := gcpay.NewCacheFromConfig(&gcpay.CacheConfig{
			Type:   gcpay.CacheTypeMemory,
			Memory: &gcpay.MemoryCacheConfig{MaxSize: 5},
		})
		require.NoError(t, err)
		assert.IsType(t, &gcpay.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := gcpay.NewCacheFromConfig(&gcpay.CacheConfig{Type: gcpay.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &gcpay.NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		t.Parallel()

		_, err := gcpay.NewCacheFromConfig(&gcpay.CacheConfig{Type: gcpay.CacheTypeNATS})
		assert.ErrorIs(t, err, gcpay.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := gcpay.NewCacheFromConfig(&gcpay.CacheConfig{Type: "redis"})
		assert.ErrorIs(t, err, gcpay.ErrUnsupportedCacheType)
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := gcpay.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", freshEntry("value")))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, gcpay.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
	assert.NoError(t, cache.Delete(ctx, "key"))
	assert.NoError(t, cache.Clear(ctx))
}

func TestCacheChain(t *testing.T) {
	t.Parallel()

	t.Run("set writes everywhere", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		l1 := gcpay.NewMemoryCache(10)
		l2 := gcpay.NewMemoryCache(10)
		chain := gcpay.NewCacheChain(l1, l2)

		require.NoError(t, chain.Set(ctx, "key", freshEntry("value")))
		assert.True(t, l1.Has(ctx, "key"))
		assert.True(t, l2.Has(ctx, "key"))
	})

	t.Run("get back-fills earlier caches", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		l1 := gcpay.NewMemoryCache(10)
		l2 := gcpay.NewMemoryCache(10)
		chain := gcpay.NewCacheChain(l1, l2)

		require.NoError(t, l2.Set(ctx, "key", freshEntry("value")))

		entry, err := chain.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), entry.Data)

		// The L2 hit is promoted into L1
		assert.True(t, l1.Has(ctx, "key"))
	})

	t.Run("miss in every cache", func(t *testing.T) {
		t.Parallel()

		chain := gcpay.NewCacheChain(gcpay.NewMemoryCache(10), gcpay.NewNoOpCache())

		_, err := chain.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, gcpay.ErrKeyNotFoundInAnyCache)
	})

	t.Run("delete and clear reach every cache", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		l1 := gcpay.NewMemoryCache(10)
		l2 := gcpay.NewMemoryCache(10)
		chain := gcpay.NewCacheChain(l1, l2)

		require.NoError(t, chain.Set(ctx, "a", freshEntry("1")))
		require.NoError(t, chain.Set(ctx, "b", freshEntry("2")))

		require.NoError(t, chain.Delete(ctx, "a"))
		assert.False(t, l1.Has(ctx, "a"))
		assert.False(t, l2.Has(ctx, "a"))

		require.NoError(t, chain.Clear(ctx))
		assert.False(t, chain.Has(ctx, "b"))
	})
}
