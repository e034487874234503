package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mediavault/internal/client/upload"
)

func (a *App) uploadFile(ctx context.Context, path string, parentID string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	res, err := a.pipeline.Run(ctx, upload.Request{
		Name:     filepath.Base(path),
		Data:     data,
		ParentID: parentID,
	})
	if err != nil {
		fmt.Printf("upload failed: %s\n", err.Error())
		return
	}
	fmt.Printf("%s uploaded (%s, id %s)\n", res.Item.Name, res.Item.MimeType, res.Item.ID)
}
