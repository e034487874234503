package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mediavault/internal/client/store"
	"github.com/dmitrijs2005/mediavault/internal/common"
)

func (a *App) createAlbum(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Album name", os.Stdout)
	if err != nil || name == "" {
		fmt.Println("Album name is required")
		return
	}
	public, err := GetYesNo(a.reader, "Make the album public?", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	album, err := a.store.CreateAlbum(ctx, name, public)
	if errors.Is(err, common.ErrRemoteSyncPending) {
		fmt.Printf("album %s saved locally, remote sync pending\n", album.Name)
		return
	}
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("album %s created (id %s)\n", album.Name, album.ID)
}

func (a *App) listAlbums(ctx context.Context) {
	items, err := a.store.FetchAll(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Public:")
	printItems(store.PublicAlbums(items))
	fmt.Println("Private:")
	printItems(store.PrivateAlbums(items))
}

func (a *App) openAlbum(ctx context.Context, id string) {
	items, err := a.store.ListInFolder(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	printItems(items)
}
