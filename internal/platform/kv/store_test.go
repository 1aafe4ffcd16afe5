// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/platform/kv"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, store.Remove(ctx, "k"))
	require.NoError(t, store.Remove(ctx, "k"))
	_, found, _ = store.Get(ctx, "k")
	assert.False(t, found)
}

func TestScoped_IsolatesDevices(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	alpha := kv.Scoped(store, "alpha")
	beta := kv.Scoped(store, "beta")

	require.NoError(t, alpha.Set(ctx, "ledger:pins:quests", []byte(`["Q1"]`)))

	_, found, err := beta.Get(ctx, "ledger:pins:quests")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, []string{"device:alpha:ledger:pins:quests"}, store.Keys("device:"))
}

func TestLoadJSON_AbsentIsDefault(t *testing.T) {
	ctx := context.Background()
	value, err := kv.LoadJSON[[]string](ctx, kv.NewMemoryStore(), "nothing", slog.Default())
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestLoadJSON_CorruptIsDiscardedAndLogged(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "ledger", []byte(`{"not":"a list"`)))

	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))

	value, err := kv.LoadJSON[[]string](ctx, store, "ledger", logger)
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.Contains(t, buffer.String(), "persisted_state_discarded")
}

func TestLoadJSON_WrongShapeIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "ledger", []byte(`{"ids":["Q1"]}`)))

	value, err := kv.LoadJSON[[]string](ctx, store, "ledger", slog.Default())
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, kv.SaveJSON(ctx, store, "prefs:hide_chain_quests", true))
	value, err := kv.LoadJSON[bool](ctx, store, "prefs:hide_chain_quests", slog.Default())
	require.NoError(t, err)
	assert.True(t, value)
}
