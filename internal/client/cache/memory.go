package cache

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
)

// MemoryCache is a non-durable Cache used in tests and as an ephemeral
// fallback when no database path is configured.
type MemoryCache struct {
	mu    sync.Mutex
	items []models.StorageItem
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) ReadAll(_ context.Context) ([]models.StorageItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.StorageItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *MemoryCache) WriteAll(_ context.Context, items []models.StorageItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]models.StorageItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *MemoryCache) Upsert(_ context.Context, item models.StorageItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = upsertInto(c.items, item)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = deleteFrom(c.items, id)
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return nil
}
