// Package store implements the item store: the merge engine producing the
// effective collection from the remote snapshot and the local mutation cache,
// and the optimistic mutation operations that write through to both.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/client/cache"
	"github.com/dmitrijs2005/mediavault/internal/client/gateway"
	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/common"
	"github.com/dmitrijs2005/mediavault/internal/logging"
)

// Store merges the last-fetched remote snapshot with the local mutation
// cache. Mutations are applied to the cache first (optimistic), then pushed
// to the gateway; a remote failure is reported but never rolled back locally.
type Store struct {
	gw    gateway.Gateway
	cache cache.Cache
	log   logging.Logger

	// Remote snapshot from the most recent successful ListItems. Lets
	// mutations resolve targets that were never locally modified without
	// another network round trip.
	snapshot []models.StorageItem
}

func New(gw gateway.Gateway, c cache.Cache, log logging.Logger) *Store {
	return &Store{gw: gw, cache: c, log: log}
}

// Merge produces the effective collection: a cache-biased union keyed by id.
// Cached entries come first in cache order and override remote entries with
// the same id; remote-only ids follow in server order. Merging the same
// inputs twice yields the same collection.
func Merge(remote, cached []models.StorageItem) []models.StorageItem {
	seen := make(map[string]struct{}, len(cached))
	merged := make([]models.StorageItem, 0, len(cached)+len(remote))

	for _, it := range cached {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		merged = append(merged, it)
	}
	for _, it := range remote {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		merged = append(merged, it)
	}
	return merged
}

// FetchAll fetches the remote item list, merges it with the cache, persists
// the merged result back to the cache (so an offline reload still shows the
// merged view) and returns it. A gateway failure degrades to cache-only
// contents instead of failing outright.
func (s *Store) FetchAll(ctx context.Context) ([]models.StorageItem, error) {
	cached, err := s.cache.ReadAll(ctx)
	if err != nil {
		s.log.Warn(ctx, "cache read failed, treating as empty", "error", err)
		cached = nil
	}

	remote, err := s.gw.ListItems(ctx)
	if err != nil {
		s.log.Warn(ctx, "remote list failed, serving cached items", "error", err, "cached", len(cached))
		return cached, nil
	}
	s.snapshot = remote

	merged := Merge(remote, cached)
	if err := s.cache.WriteAll(ctx, merged); err != nil {
		s.log.Warn(ctx, "failed to persist merged collection", "error", err)
	}
	return merged, nil
}

// effective returns the current effective collection without touching the
// network: cached overlay merged over the last known remote snapshot.
func (s *Store) effective(ctx context.Context) ([]models.StorageItem, error) {
	cached, err := s.cache.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(s.snapshot, cached), nil
}

func (s *Store) lookup(ctx context.Context, id string) (*models.StorageItem, error) {
	items, err := s.effective(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", id, common.ErrNotFound)
}

// setFlag is the shared optimistic mutation path: overlay into the cache,
// then attempt the remote call. The local write stands even when the remote
// call fails; the caller gets ErrRemoteSyncPending in that case.
func (s *Store) setFlag(ctx context.Context, id string, flag gateway.Flag, value bool) (*models.StorageItem, error) {
	item, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	switch flag {
	case gateway.FlagFavorite:
		item.IsFavorite = value
	case gateway.FlagTrashed:
		item.IsDeleted = value
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.cache.Upsert(ctx, *item); err != nil {
		return nil, fmt.Errorf("cache %s for %s: %w", flag, id, err)
	}

	if _, err := s.gw.SetFlag(ctx, id, flag, value); err != nil {
		s.log.Warn(ctx, "remote flag update failed, local state kept",
			"id", id, "flag", string(flag), "value", value, "error", err)
		return item, fmt.Errorf("set %s on %s: %w: %w", flag, id, common.ErrRemoteSyncPending, err)
	}
	return item, nil
}

// ToggleFavorite sets the favorite flag. The target must exist in the
// effective collection, otherwise ErrNotFound.
func (s *Store) ToggleFavorite(ctx context.Context, id string, value bool) (*models.StorageItem, error) {
	return s.setFlag(ctx, id, gateway.FlagFavorite, value)
}

// MoveToTrash soft-deletes an item.
func (s *Store) MoveToTrash(ctx context.Context, id string) (*models.StorageItem, error) {
	return s.setFlag(ctx, id, gateway.FlagTrashed, true)
}

// RestoreFromTrash clears the soft-delete flag.
func (s *Store) RestoreFromTrash(ctx context.Context, id string) (*models.StorageItem, error) {
	return s.setFlag(ctx, id, gateway.FlagTrashed, false)
}

// ListInFolder returns the non-deleted contents of a folder (empty parentID
// means root level). Ordering is stable within a snapshot.
func (s *Store) ListInFolder(ctx context.Context, parentID string) ([]models.StorageItem, error) {
	items, err := s.effective(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.StorageItem, 0)
	for _, it := range items {
		if it.ParentID == parentID && !it.IsDeleted {
			out = append(out, it)
		}
	}
	return out, nil
}

// CreateAlbum inserts an optimistic placeholder album, then asks the remote
// to create it. On success the placeholder is replaced by the server folder
// (reconciliation, not a duplicate insert); on failure the placeholder stays
// and ErrRemoteSyncPending is reported.
func (s *Store) CreateAlbum(ctx context.Context, name string, public bool) (*models.StorageItem, error) {
	now := time.Now().UTC()
	placeholder := models.StorageItem{
		ID:        models.NewPendingAlbumID(),
		Name:      name,
		Kind:      models.ItemKindFolder,
		IsPublic:  public,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cache.Upsert(ctx, placeholder); err != nil {
		return nil, fmt.Errorf("cache album %q: %w", name, err)
	}

	created, err := s.gw.CreateFolder(ctx, name, public, "")
	if err != nil {
		s.log.Warn(ctx, "remote album creation failed, placeholder kept",
			"name", name, "id", placeholder.ID, "error", err)
		return &placeholder, fmt.Errorf("create album %q: %w: %w", name, common.ErrRemoteSyncPending, err)
	}

	if err := s.cache.Delete(ctx, placeholder.ID); err != nil {
		s.log.Warn(ctx, "failed to drop album placeholder", "id", placeholder.ID, "error", err)
	}
	if err := s.cache.Upsert(ctx, *created); err != nil {
		return nil, fmt.Errorf("cache album %q: %w", name, err)
	}
	return created, nil
}
