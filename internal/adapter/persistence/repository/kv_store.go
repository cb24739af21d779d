package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Keys of the local key/value store. The names match what the storefront
// has always used so that existing local data stays readable.
const (
	KeyPricing           = "bms_pricing"
	KeyInquiries         = "bms_inquiries"
	KeyInquiriesMigrated = "bms_inquiries_migrated"
)

// KVStore is a string key/value table on top of SQLite.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, key)
}

func (s *KVStore) Put(ctx context.Context, key, value string) error {
	return put(ctx, s.db, key, value)
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Update runs a read-modify-write of one key inside a transaction. fn gets
// the current value (found is false when the key is absent) and returns the
// value to store.
func (s *KVStore) Update(ctx context.Context, key string, fn func(current string, found bool) (string, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	current, found, err := get(ctx, tx, key)
	if err != nil {
		return err
	}
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	if err := put(ctx, tx, key, next); err != nil {
		return err
	}
	return tx.Commit()
}

func get(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func put(ctx context.Context, q queryer, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}
