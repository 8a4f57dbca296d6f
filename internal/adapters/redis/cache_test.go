package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archwize/archwize/internal/adapters/redis"
	"github.com/archwize/archwize/pkg/mermaid"
)

func newCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	code, ok, err := cache.Get(ctx, "user login flow", mermaid.TopDown)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, code)

	diagram := "graph TD;\n  A[\"Start\"] --> B[\"End\"];\n"
	require.NoError(t, cache.Set(ctx, "user login flow", mermaid.TopDown, diagram))

	code, ok, err = cache.Get(ctx, "user login flow", mermaid.TopDown)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, diagram, code)
}

func TestCacheOrientationSeparatesEntries(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "checkout", mermaid.TopDown, "graph TD;\n"))

	_, ok, err := cache.Get(ctx, "checkout", mermaid.LeftRight)
	assert.NoError(t, err)
	assert.False(t, ok, "different orientation must not hit the same entry")
}

func TestCacheTTLExpiration(t *testing.T) {
	cache, mr := newCache(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "payment flow", mermaid.TopDown, "graph TD;\n"))

	_, ok, err := cache.Get(ctx, "payment flow", mermaid.TopDown)
	assert.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = cache.Get(ctx, "payment flow", mermaid.TopDown)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCachePrefix(t *testing.T) {
	cache, mr := newCache(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "api flow", mermaid.TopDown, "graph TD;\n"))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "custom:app:")
}
