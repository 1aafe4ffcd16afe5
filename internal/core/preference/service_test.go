// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/preference"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
)

func TestService_DefaultsAndOverrides(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := preference.NewService(store, slog.Default())

	values, err := service.All(ctx, "dev")
	require.NoError(t, err)
	assert.False(t, values["hide_chain_quests"])
	assert.True(t, values["show_dialogue"])

	require.NoError(t, service.Set(ctx, "dev", "show_dialogue", false))
	require.NoError(t, kv.Scoped(store, "dev").Set(ctx, "prefs:hide_chain_quests", []byte("maybe")))

	values, err = service.All(ctx, "dev")
	require.NoError(t, err)
	assert.False(t, values["show_dialogue"])
	assert.False(t, values["hide_chain_quests"])
}

func TestService_RejectsUnknownName(t *testing.T) {
	service := preference.NewService(kv.NewMemoryStore(), slog.Default())

	err := service.Set(context.Background(), "dev", "dark_mode", true)

	assert.Error(t, err)
}
