// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package kv_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/internal/platform/migration"
	pgstore "github.com/taibuivan/gamecodex/internal/platform/postgres"
	redisstore "github.com/taibuivan/gamecodex/internal/platform/redis"
)

// Run with: go test -tags integration ./internal/platform/kv/
// GAMECODEX_TEST_REDIS_URL and GAMECODEX_TEST_DATABASE_URL select the servers.

// assertAbsentThenRoundTrip checks that a missing key reads as absent without
// an error, then exercises set, overwrite and remove.
func assertAbsentThenRoundTrip(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()
	key := "pins:quests:" + uuid.NewString()

	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, key, []byte(`["1"]`)))
	require.NoError(t, store.Set(ctx, key, []byte(`["1","2"]`)))

	value, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `["1","2"]`, string(value))

	require.NoError(t, store.Remove(ctx, key))
	require.NoError(t, store.Remove(ctx, key))

	_, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_MissingKeyIsAbsent(t *testing.T) {
	redisURL := os.Getenv("GAMECODEX_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("GAMECODEX_TEST_REDIS_URL not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := redisstore.NewClient(context.Background(), redisURL, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assertAbsentThenRoundTrip(t, kv.NewRedisStore(client))
}

func TestPostgresStore_MissingKeyIsAbsent(t *testing.T) {
	databaseURL := os.Getenv("GAMECODEX_TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("GAMECODEX_TEST_DATABASE_URL not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	migrations, err := filepath.Abs(filepath.Join("..", "..", "..", "data", "migrations"))
	require.NoError(t, err)
	require.NoError(t, migration.RunUp(databaseURL, migrations, logger))

	pool, err := pgstore.NewPool(context.Background(), databaseURL, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	assertAbsentThenRoundTrip(t, kv.NewPostgresStore(pool))
}
