// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gamecodex/internal/platform/dberr"
)

// PostgresStore implements [Store] on the device_kv table created by the
// 000001 migration.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed [Store].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (repository *PostgresStore) Get(context context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := repository.db.QueryRow(context,
		`SELECT value FROM device_kv WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, dberr.Wrap(err, "get_device_kv")
	}
	return value, true, nil
}

func (repository *PostgresStore) Set(context context.Context, key string, value []byte) error {
	_, err := repository.db.Exec(context, `
		INSERT INTO device_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return dberr.Wrap(err, "upsert_device_kv")
}

func (repository *PostgresStore) Remove(context context.Context, key string) error {
	_, err := repository.db.Exec(context, `DELETE FROM device_kv WHERE key = $1`, key)
	return dberr.Wrap(err, "delete_device_kv")
}
