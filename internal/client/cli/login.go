package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mediavault/internal/client/gateway"
)

// login stores a session token for the current process only; nothing is
// persisted to disk.
func (a *App) login(ctx context.Context) {
	token, err := GetSimpleText(a.reader, "Paste the session token", os.Stdout)
	if err != nil || token == "" {
		fmt.Println("A session token is required")
		return
	}

	owner := gateway.OwnerFromToken(token)
	if owner.UserID == "" {
		fmt.Println("token carries no subject claim; continuing without a user id")
	}

	a.config.SessionToken = token
	if err := a.rebuildGateway(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if owner.UserID != "" {
		fmt.Printf("logged in as %s\n", owner.UserID)
	} else {
		fmt.Println("logged in")
	}
}
