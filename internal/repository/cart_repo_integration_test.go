//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	rdb := newRedisClient(t)
	store := repository.NewRedisCartStore(rdb, time.Minute)
	ctx := context.Background()

	c := model.NewPendingSale()
	c.State = model.CartBuilding
	c.Lines = append(c.Lines, model.PendingLine{
		Product:   "Tela",
		Quantity:  decimal.RequireFromString("1.5"),
		UnitPrice: decimal.RequireFromString("4.20"),
		Subtotal:  decimal.RequireFromString("6.30"),
	})
	c.Total = decimal.RequireFromString("6.30")
	require.NoError(t, store.Save(ctx, c))

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, model.CartBuilding, got.State)
	require.Len(t, got.Lines, 1)
	assert.True(t, got.Total.Equal(c.Total))

	ttl, err := rdb.TTL(ctx, "cart:"+c.ID.String()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, c.ID))
	_, err = store.Get(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestRedisCartStore_EmptyCartDecodesLines(t *testing.T) {
	rdb := newRedisClient(t)
	store := repository.NewRedisCartStore(rdb, time.Minute)
	ctx := context.Background()

	c := model.NewPendingSale()
	require.NoError(t, store.Save(ctx, c))

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Lines)
	assert.Equal(t, model.CartEmpty, got.State)
}

func TestRedisCartStore_Lock(t *testing.T) {
	rdb := newRedisClient(t)
	store := repository.NewRedisCartStore(rdb, time.Minute)
	ctx := context.Background()
	id := model.NewPendingSale().ID

	unlock, err := store.Lock(ctx, id)
	require.NoError(t, err)

	t.Run("second holder waits until release", func(t *testing.T) {
		acquired := make(chan struct{})
		go func() {
			unlock2, err := store.Lock(ctx, id)
			if err == nil {
				close(acquired)
				unlock2()
			}
		}()

		select {
		case <-acquired:
			t.Fatal("lock acquired while held")
		case <-time.After(100 * time.Millisecond):
		}
		unlock()
		select {
		case <-acquired:
		case <-time.After(2 * time.Second):
			t.Fatal("lock not acquired after release")
		}
	})

	t.Run("cancelled wait", func(t *testing.T) {
		hold, err := store.Lock(ctx, id)
		require.NoError(t, err)
		defer hold()

		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err = store.Lock(cctx, id)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
