package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mediavault/internal/client/cache"
	"github.com/dmitrijs2005/mediavault/internal/client/config"
	"github.com/dmitrijs2005/mediavault/internal/client/gateway"
	"github.com/dmitrijs2005/mediavault/internal/client/store"
	"github.com/dmitrijs2005/mediavault/internal/client/upload"
	"github.com/dmitrijs2005/mediavault/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the config, gateway, cache, store and upload pipeline behind the
// REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	cache    cache.Cache
	store    *store.Store
	pipeline *upload.Pipeline
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := cache.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		log:    logging.NewSlogLogger(slog.Default()),
		db:     db,
		cache:  cache.NewSQLiteCache(db),
		reader: bufio.NewReader(os.Stdin),
	}
	if err := a.rebuildGateway(); err != nil {
		return nil, err
	}
	return a, nil
}

// rebuildGateway reconstructs the gateway-dependent components. Called at
// startup and again after login changes the session token.
func (a *App) rebuildGateway() error {
	gw, err := gateway.New(a.config)
	if err != nil {
		return err
	}
	a.store = store.New(gw, a.cache, a.log)
	a.pipeline = upload.New(gw, a.cache, a.log)
	return nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
