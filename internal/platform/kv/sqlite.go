package kv

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const collectionsTable = "collections"

//go:embed migrations/*.sql
var migrations embed.FS

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	// One connection serialises writers; SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, dir)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Read(ctx context.Context, key string) (json.RawMessage, error) {
	var payload string
	err := sq.Select("payload").
		From(collectionsTable).
		Where(sq.Eq{"key": key}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return json.RawMessage(payload), nil
}

func (s *SQLiteStore) Write(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, entry := range entries {
		_, err := sq.Insert(collectionsTable).
			Columns("key", "payload", "updated_at").
			Values(entry.Key, string(entry.Value), now).
			Suffix("ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at").
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("write %s: %w", entry.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := sq.Delete(collectionsTable).RunWith(s.db).ExecContext(ctx); err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	return nil
}
