// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"database/sql"
	"time"

	"github.com/taibuivan/gamecodex/internal/platform/dberr"
)

// SQLiteStore implements [Store] on the device_kv table of an embedded database
// opened by the sqlite platform package.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open SQLite handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (repository *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := repository.db.QueryRowContext(ctx, `SELECT value FROM device_kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, dberr.Wrap(err, "get_device_kv")
	}
	return value, true, nil
}

func (repository *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := repository.db.ExecContext(ctx, `
		INSERT INTO device_kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().UnixMilli())
	return dberr.Wrap(err, "upsert_device_kv")
}

func (repository *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := repository.db.ExecContext(ctx, `DELETE FROM device_kv WHERE key = ?`, key)
	return dberr.Wrap(err, "delete_device_kv")
}
