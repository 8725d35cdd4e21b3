package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *RedisAdapter {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "stats", []byte(`{"total_pedidos":3}`), 10*time.Second)
	assert.NoError(t, err)

	val, err := adapter.Get(ctx, "stats")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"total_pedidos":3}`), val)
}

func TestRedisAdapter_GetMiss(t *testing.T) {
	adapter := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "stats", []byte("value"), 0))
	assert.NoError(t, adapter.Delete(ctx, "stats"))

	_, err := adapter.Get(ctx, "stats")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()

	err = adapter.Set(ctx, "stats", []byte("expires"), 1*time.Second)
	require.NoError(t, err)

	_, err = adapter.Get(ctx, "stats")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "stats")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
