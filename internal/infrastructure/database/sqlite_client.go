package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// ConnectSQLite opens the local key/value store used in local-only mode and
// as the legacy source for migration. Use ":memory:" in tests.
//
// SQLite allows one writer at a time, and an in-memory database only lives
// on the connection that created it, so the pool is capped at one connection.
func ConnectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv schema: %w", err)
	}
	return db, nil
}
