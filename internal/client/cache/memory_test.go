package cache

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_UpsertPrependsNewEntries(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Upsert(ctx, models.StorageItem{ID: "old"}))
	require.NoError(t, c.Upsert(ctx, models.StorageItem{ID: "new"}))

	out, err := c.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", out[0].ID)
	require.Equal(t, "old", out[1].ID)
}

func TestMemoryCache_ReadAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	require.NoError(t, c.WriteAll(ctx, []models.StorageItem{{ID: "1", Name: "orig"}}))

	out, _ := c.ReadAll(ctx)
	out[0].Name = "mutated"

	again, _ := c.ReadAll(ctx)
	require.Equal(t, "orig", again[0].Name)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	require.NoError(t, c.WriteAll(ctx, []models.StorageItem{{ID: "1"}, {ID: "2"}}))

	require.NoError(t, c.Delete(ctx, "2"))
	out, _ := c.ReadAll(ctx)
	require.Len(t, out, 1)

	require.NoError(t, c.Clear(ctx))
	out, _ = c.ReadAll(ctx)
	require.Empty(t, out)
}
