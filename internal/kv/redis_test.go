package kv

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_SetGet(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Dana", Count: 3}))

	var got record
	found, err := store.Get(ctx, "user:1", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Dana", got.Name)
	require.Equal(t, 3, got.Count)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store := newRedisStore(t)

	var got map[string]any
	found, err := store.Get(context.Background(), "user:absent", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisStore_Delete(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "feedback:1", map[string]string{"id": "1"}))
	require.NoError(t, store.Delete(ctx, "feedback:1"))
	require.NoError(t, store.Delete(ctx, "feedback:1"))

	var got map[string]string
	found, err := store.Get(ctx, "feedback:1", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisStore_GetByPrefix(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "resource:a", map[string]string{"id": "a"}))
	require.NoError(t, store.Set(ctx, "resource:b", map[string]string{"id": "b"}))
	require.NoError(t, store.Set(ctx, "department:x", map[string]string{"id": "x"}))

	values, err := store.GetByPrefix(ctx, "resource:")
	require.NoError(t, err)
	require.Len(t, values, 2)

	values, err = store.GetByPrefix(ctx, "announcement:")
	require.NoError(t, err)
	require.Empty(t, values)
}
