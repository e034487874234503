package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/client/store"
)

func printItems(items []models.StorageItem) {
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, it := range items {
		flags := ""
		if it.IsFavorite {
			flags += "*"
		}
		if it.IsDeleted {
			flags += "x"
		}
		if models.IsPendingID(it.ID) {
			flags += "~"
		}
		kind := string(it.MimeCategory)
		if it.IsFolder() {
			kind = "album"
		}
		fmt.Printf("%-24s %-8s %8s %-2s %s\n", it.ID, kind, models.FormatSize(it.Size), flags, it.Name)
	}
}

func (a *App) list(ctx context.Context) {
	items, err := a.store.FetchAll(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	printItems(store.MyUploads(items))
}

func (a *App) listFavorites(ctx context.Context) {
	items, err := a.store.FetchAll(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	printItems(store.Favorites(items))
}

func (a *App) listTrash(ctx context.Context) {
	items, err := a.store.FetchAll(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	printItems(store.Trash(items))
}
