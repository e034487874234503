// Package cache provides the local mutation cache: a durable overlay of
// locally-applied item mutations (favorite toggles, trash moves, pending
// creations) keyed by item id, persisted so it survives a restart.
//
// The storage layer has whole-array semantics: one serialized array of
// canonical items under a single well-known key. Ordering is last-write-wins
// by call-completion order; there are no per-entry clocks.
package cache

import (
	"context"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
)

// Cache describes the mutation-overlay contract. Implementations must treat
// an absent or corrupt persisted blob as empty, never as an error.
type Cache interface {
	// ReadAll returns every cached item, possibly none.
	ReadAll(ctx context.Context) ([]models.StorageItem, error)

	// WriteAll replaces the entire overlay and persists it.
	WriteAll(ctx context.Context, items []models.StorageItem) error

	// Upsert inserts or replaces one item by id, then persists. New entries
	// are placed at the front so the most recent local change lists first.
	Upsert(ctx context.Context, item models.StorageItem) error

	// Delete removes the item with the given id, if present.
	Delete(ctx context.Context, id string) error

	// Clear discards the whole overlay.
	Clear(ctx context.Context) error
}

// upsertInto applies Upsert semantics to a slice: replace in place by id, or
// prepend when absent.
func upsertInto(items []models.StorageItem, item models.StorageItem) []models.StorageItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return items
		}
	}
	return append([]models.StorageItem{item}, items...)
}

// deleteFrom removes the item with the given id, preserving order.
func deleteFrom(items []models.StorageItem, id string) []models.StorageItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
