// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
)

func newOverlay(t *testing.T) (*catalog.Overlay, kv.Store) {
	t.Helper()
	store := kv.Scoped(kv.NewMemoryStore(), "device-1")
	return catalog.NewOverlay(store, slog.Default()), store
}

func TestOverlay_EmptyByDefault(t *testing.T) {
	overlay, _ := newOverlay(t)

	guides, err := overlay.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, guides)
	assert.Empty(t, guides)
}

func TestOverlay_AppendAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	overlay, _ := newOverlay(t)

	first, err := overlay.Append(ctx, catalog.Guide{ID: "taken", Title: "Glass Cannon"})
	require.NoError(t, err)
	second, err := overlay.Append(ctx, catalog.Guide{ID: "taken", Title: "Glass Cannon"})
	require.NoError(t, err)

	assert.NotEqual(t, catalog.ID("taken"), first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.UserContent)

	guides, err := overlay.List(ctx)
	require.NoError(t, err)
	assert.Len(t, guides, 2)
}

func TestOverlay_AppendRejectsMissingTitle(t *testing.T) {
	overlay, _ := newOverlay(t)

	_, err := overlay.Append(context.Background(), catalog.Guide{Title: "  "})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestOverlay_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	overlay, _ := newOverlay(t)

	added, err := overlay.Append(ctx, catalog.Guide{Title: "Draft"})
	require.NoError(t, err)

	updated, err := overlay.Update(ctx, added.ID, catalog.Guide{ID: "ignored", Title: "Final", BuildType: "PvP"})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)

	got, found, err := overlay.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "PvP", got.BuildType)

	require.NoError(t, overlay.Delete(ctx, added.ID))

	err = overlay.Delete(ctx, added.ID)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestOverlay_UpdateUnknownIsNotFound(t *testing.T) {
	overlay, _ := newOverlay(t)

	_, err := overlay.Update(context.Background(), "nope", catalog.Guide{Title: "X"})

	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestOverlay_CorruptStateReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	overlay, store := newOverlay(t)
	require.NoError(t, store.Set(ctx, constants.KeyOverlayGuides, []byte(`"not a list"`)))

	guides, err := overlay.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, guides)

	_, err = overlay.Append(ctx, catalog.Guide{Title: "Recovered"})
	require.NoError(t, err)
	guides, err = overlay.List(ctx)
	require.NoError(t, err)
	assert.Len(t, guides, 1)
}

func TestMerge_KeepsBaseFirst(t *testing.T) {
	base := []catalog.Guide{{ID: "b1"}, {ID: "b2"}}
	overlay := []catalog.Guide{{ID: "o1", UserContent: true}}

	merged := catalog.Merge(base, overlay)

	require.Len(t, merged, 3)
	assert.Equal(t, catalog.ID("o1"), merged[2].ID)
	assert.Len(t, base, 2)
}
