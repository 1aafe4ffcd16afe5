// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/platform/dberr"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "pgx_no_rows", err: pgx.ErrNoRows, want: true},
		{name: "sql_no_rows", err: sql.ErrNoRows, want: true},
		{name: "redis_nil", err: redis.Nil, want: true},
		{name: "wrapped_pgx_no_rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: true},
		{name: "wrapped_redis_nil", err: fmt.Errorf("get: %w", redis.Nil), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "other", err: errors.New("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dberr.IsNotFound(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "get_device_kv"))

	err := dberr.Wrap(context.DeadlineExceeded, "get_device_kv")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "store: get_device_kv: context deadline exceeded", err.Error())
}
