package kvrepo

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/pkg/dbpkg"
)

//go:embed migrations/sqlite/*.sql
var migrations embed.FS

// SQLite is a namespace persisted in a single SQLite file.
type SQLite struct {
	db dbpkg.SQLInterface
}

// NewSQLite returns SQLite over an already migrated database.
func NewSQLite(db dbpkg.SQLInterface) *SQLite {
	return &SQLite{
		db: db,
	}
}

// OpenSQLite opens the database file at path and applies migrations.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One writer keeps whole-value writes ordered.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	fsys, err := fs.Sub(migrations, "migrations/sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := dbpkg.Migrate(ctx, db, goose.DialectSQLite3, fsys); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

const getQuery = `
SELECT value
FROM kv
WHERE key = ?
`

// Get returns the value stored under key.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}

		zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Send()

		return "", false, err
	}

	return value, true, nil
}

const setQuery = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at
`

// Set stores value under key.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, setQuery, key, value); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Send()
		return err
	}

	return nil
}

const removeQuery = `
DELETE FROM kv
WHERE key = ?
`

// Remove deletes key. Removing an absent key is not an error.
func (s *SQLite) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, removeQuery, key); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Send()
		return err
	}

	return nil
}

const keysQuery = `
SELECT key
FROM kv
WHERE substr(key, 1, ?) = ?
ORDER BY key
`

// Keys returns sorted keys starting with prefix.
func (s *SQLite) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, keysQuery, utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("prefix", prefix).Send()
		return nil, err
	}
	defer rows.Close()

	keys := make([]string, 0)

	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}

		keys = append(keys, k)
	}

	return keys, rows.Err()
}
