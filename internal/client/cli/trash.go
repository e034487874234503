package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mediavault/internal/common"
)

func (a *App) moveToTrash(ctx context.Context, id string) {
	item, err := a.store.MoveToTrash(ctx, id)
	if errors.Is(err, common.ErrRemoteSyncPending) {
		fmt.Printf("%s moved to trash locally, remote sync pending\n", item.Name)
		return
	}
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("%s moved to trash\n", item.Name)
}

func (a *App) restoreFromTrash(ctx context.Context, id string) {
	item, err := a.store.RestoreFromTrash(ctx, id)
	if errors.Is(err, common.ErrRemoteSyncPending) {
		fmt.Printf("%s restored locally, remote sync pending\n", item.Name)
		return
	}
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("%s restored from trash\n", item.Name)
}
