// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// IsNotFound reports whether err signals a missing row or key in any of the
// device-store drivers (pgx, database/sql, go-redis).
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, redis.Nil)
}

// Wrap annotates a storage error with the failing action.
// Missing rows are not errors for the device store and must be checked with
// [IsNotFound] before calling Wrap.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("store: %s: %w", action, err)
}
