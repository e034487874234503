package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mediavault/internal/common"
)

func (a *App) setFavorite(ctx context.Context, id string, value bool) {
	item, err := a.store.ToggleFavorite(ctx, id, value)
	if errors.Is(err, common.ErrRemoteSyncPending) {
		fmt.Printf("%s: saved locally, remote sync pending\n", item.Name)
		return
	}
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if value {
		fmt.Printf("%s added to favorites\n", item.Name)
	} else {
		fmt.Printf("%s removed from favorites\n", item.Name)
	}
}
