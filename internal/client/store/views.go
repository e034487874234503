package store

import "github.com/dmitrijs2005/mediavault/internal/client/models"

// View projections: pure filters over the effective collection. Each returns
// a fresh slice and never mutates its input.

func filter(items []models.StorageItem, keep func(models.StorageItem) bool) []models.StorageItem {
	out := make([]models.StorageItem, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// MyUploads lists everything not in the trash.
func MyUploads(items []models.StorageItem) []models.StorageItem {
	return filter(items, func(it models.StorageItem) bool {
		return !it.IsDeleted
	})
}

// Favorites lists favorited items not in the trash.
func Favorites(items []models.StorageItem) []models.StorageItem {
	return filter(items, func(it models.StorageItem) bool {
		return it.IsFavorite && !it.IsDeleted
	})
}

// Trash lists soft-deleted items, favorited or not.
func Trash(items []models.StorageItem) []models.StorageItem {
	return filter(items, func(it models.StorageItem) bool {
		return it.IsDeleted
	})
}

// PublicAlbums lists folders that are public or shared.
func PublicAlbums(items []models.StorageItem) []models.StorageItem {
	return filter(items, func(it models.StorageItem) bool {
		return it.IsFolder() && (it.IsPublic || it.IsShared)
	})
}

// PrivateAlbums lists folders that are neither public nor shared.
func PrivateAlbums(items []models.StorageItem) []models.StorageItem {
	return filter(items, func(it models.StorageItem) bool {
		return it.IsFolder() && !it.IsPublic && !it.IsShared
	})
}
