package cache

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemoryIdempotencyStore(time.Hour, time.Now)

	orderID, found, err := store.Reserve(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, uuid.Nil, orderID)

	_, _, err = store.Reserve(ctx, "key-1")
	assert.ErrorIs(t, err, service.ErrIdempotencyInProgress)

	placed := uuid.New()
	require.NoError(t, store.Complete(ctx, "key-1", placed))

	orderID, found, err = store.Reserve(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, placed, orderID)
}

func TestMemoryIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryIdempotencyStore(time.Hour, time.Now)

	_, _, err := store.Reserve(ctx, "key-1")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "key-1"))

	_, found, err := store.Reserve(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryIdempotencyStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryIdempotencyStore(time.Minute, func() time.Time { return now })

	require.NoError(t, store.Complete(ctx, "key-1", uuid.New()))

	now = now.Add(2 * time.Minute)

	_, found, err := store.Reserve(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestParseReservation_Corrupt(t *testing.T) {
	_, _, err := parseReservation("garbage")
	assert.Error(t, err)
}

func TestNewIdempotencyStore_WithoutRedis(t *testing.T) {
	store := NewIdempotencyStore(nil, &config.Config{})
	assert.IsType(t, &memoryIdempotencyStore{}, store)
}

func TestNewProductCache_WithoutRedis(t *testing.T) {
	productCache := NewProductCache(nil, &config.Config{}, nil)

	_, err := productCache.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, productCache.Invalidate(context.Background(), []uuid.UUID{uuid.New()}))
}
