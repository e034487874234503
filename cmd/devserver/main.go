package main

import (
	"context"
	"flag"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dmitrijs2005/mediavault/internal/devserver"
	"github.com/dmitrijs2005/mediavault/internal/logging"
)

func main() {
	addr := flag.String("a", ":8085", "listen address")
	dbPath := flag.String("d", "devserver.db", "sqlite database path")
	uploadDir := flag.String("u", "uploads", "upload directory")
	flag.Parse()

	ctx := context.Background()
	log := logging.NewZerologLogger(zerolog.New(os.Stdout).With().Timestamp().Logger())

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Error(ctx, "failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&devserver.Item{}); err != nil {
		log.Error(ctx, "migration failed", "error", err)
		os.Exit(1)
	}

	store, err := devserver.NewLocalStorage(*uploadDir)
	if err != nil {
		log.Error(ctx, "failed to prepare upload directory", "dir", *uploadDir, "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h := devserver.NewHandler(db, store)
	api := e.Group("/api")
	api.GET("/all", h.ListAllHandler)
	api.GET("/media/:userId", h.ListUserMediaHandler)
	api.POST("/upload", h.UploadHandler)
	api.POST("/album", h.CreateAlbumHandler)
	api.PATCH("/favorite/:id", h.FavoriteHandler)
	api.PATCH("/trash/:id", h.TrashHandler)
	e.GET("/files/:id", h.DownloadHandler)

	log.Info(ctx, "devserver listening", "addr", *addr)
	if err := e.Start(*addr); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
