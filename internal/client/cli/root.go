package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := string(a.config.Backend)
	if a.config.SessionToken != "" {
		s = s + " *"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to MediaVault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("mvault %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: login, (l)ist, open <album-id>, fav <id>, unfav <id>,")
			fmt.Println("  favorites, trash <id>, restore <id>, trashed, upload <path>,")
			fmt.Println("  mkalbum, albums, exit")

		case "login":
			a.login(ctx)
		case "list", "l":
			a.list(ctx)
		case "open":
			if len(args) == 0 {
				fmt.Println("Usage: open <album-id>")
				continue
			}
			a.openAlbum(ctx, args[0])
		case "fav":
			if len(args) == 0 {
				fmt.Println("Usage: fav <id>")
				continue
			}
			a.setFavorite(ctx, args[0], true)
		case "unfav":
			if len(args) == 0 {
				fmt.Println("Usage: unfav <id>")
				continue
			}
			a.setFavorite(ctx, args[0], false)
		case "favorites":
			a.listFavorites(ctx)
		case "trash":
			if len(args) == 0 {
				fmt.Println("Usage: trash <id>")
				continue
			}
			a.moveToTrash(ctx, args[0])
		case "restore":
			if len(args) == 0 {
				fmt.Println("Usage: restore <id>")
				continue
			}
			a.restoreFromTrash(ctx, args[0])
		case "trashed":
			a.listTrash(ctx)
		case "upload":
			if len(args) == 0 {
				fmt.Println("Usage: upload <path> [album-id]")
				continue
			}
			parentID := ""
			if len(args) > 1 {
				parentID = args[1]
			}
			a.uploadFile(ctx, args[0], parentID)
		case "mkalbum":
			a.createAlbum(ctx)
		case "albums":
			a.listAlbums(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
