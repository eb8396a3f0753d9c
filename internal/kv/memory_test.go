package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", map[string]string{"name": "Avery"}))

	var got map[string]string
	found, err := store.Get(ctx, "user:1", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Avery", got["name"])

	found, err = store.Get(ctx, "user:2", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "feedback:REQ-1", map[string]string{"id": "REQ-1"}))
	require.NoError(t, store.Set(ctx, "feedback:REQ-2", map[string]string{"id": "REQ-2"}))
	require.NoError(t, store.Set(ctx, "user:1", map[string]string{"id": "1"}))

	values, err := store.GetByPrefix(ctx, "feedback:")
	require.NoError(t, err)
	require.Len(t, values, 2)
}
