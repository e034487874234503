package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/dbx"
)

// storageKey is the well-known key the serialized item array lives under.
const storageKey = "storageItems"

// SQLiteCache implements Cache over a key-value table. The whole overlay is
// one JSON blob under storageKey. Upsert and Delete are read-modify-write and
// run inside a transaction, so concurrent writers cannot lose each other's
// entries.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache returns a SQLiteCache bound to the given database.
func NewSQLiteCache(db *sql.DB) *SQLiteCache {
	return &SQLiteCache{db: db}
}

// InitDatabase opens the local SQLite database and ensures the storage table
// exists.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storage (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage table: %w", err)
	}

	return db, nil
}

// readAll loads the overlay through q, which is either the plain connection
// or a transaction.
func readAll(ctx context.Context, q dbx.DBTX) ([]models.StorageItem, error) {
	var blob []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, storageKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage[%s]: %w", storageKey, err)
	}

	var items []models.StorageItem
	if err := json.Unmarshal(blob, &items); err != nil {
		// A corrupt blob reads as empty; it gets overwritten on the next write.
		return nil, nil
	}
	return items, nil
}

func writeAll(ctx context.Context, q dbx.DBTX, items []models.StorageItem) error {
	if items == nil {
		items = []models.StorageItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, blob)
	if err != nil {
		return fmt.Errorf("failed to write storage[%s]: %w", storageKey, err)
	}
	return nil
}

func (c *SQLiteCache) ReadAll(ctx context.Context) ([]models.StorageItem, error) {
	return readAll(ctx, c.db)
}

func (c *SQLiteCache) WriteAll(ctx context.Context, items []models.StorageItem) error {
	return writeAll(ctx, c.db, items)
}

func (c *SQLiteCache) Upsert(ctx context.Context, item models.StorageItem) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		items, err := readAll(ctx, tx)
		if err != nil {
			return err
		}
		return writeAll(ctx, tx, upsertInto(items, item))
	})
}

func (c *SQLiteCache) Delete(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		items, err := readAll(ctx, tx)
		if err != nil {
			return err
		}
		return writeAll(ctx, tx, deleteFrom(items, id))
	})
}

func (c *SQLiteCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, storageKey)
	if err != nil {
		return fmt.Errorf("failed to clear storage[%s]: %w", storageKey, err)
	}
	return nil
}
