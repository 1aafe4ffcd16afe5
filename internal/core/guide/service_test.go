// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/core/guide"
	"github.com/taibuivan/gamecodex/internal/core/ledger"
	"github.com/taibuivan/gamecodex/internal/core/viewstate"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/pkg/pagination"
)

var baseGuides = []catalog.Guide{
	{ID: "g1", Title: "Iron Wall", CharacterClass: "Warrior", BuildType: "Tank", Sections: []catalog.Section{
		{Title: "Gear", Equipment: []catalog.Equipment{
			{Slot: "Weapon", Name: "Iron Sword"},
			{Slot: "Shield", Name: "Tower Shield"},
		}},
	}},
	{ID: "g2", Title: "Glass Cannon", CharacterClass: "Mage", BuildType: "DPS", Status: "Outdated"},
	{ID: "g3", Title: "Wanderer", Author: "Kael"},
}

var items = []catalog.Item{{ID: "100", Name: "Iron Sword", Type: "Weapon"}}

var firstPage = pagination.Params{Page: 1, Limit: 50}

func newService(t *testing.T) *guide.Service {
	t.Helper()
	devices := kv.NewMemoryStore()
	store := catalog.NewStore(nil, baseGuides, items, slog.Default())
	sync := viewstate.New(viewstate.GuideParam, "https://codex.example", "/guides")
	return guide.NewService(store, devices, ledger.NewService(devices, slog.Default()), sync, slog.Default())
}

func titles(entries []guide.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Title
	}
	return out
}

func TestService_OverlayMergesAfterBase(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	created, err := service.Create(ctx, "dev", catalog.Guide{Title: "Shadow Step", CharacterClass: "Rogue"})
	require.NoError(t, err)
	assert.True(t, created.UserContent)

	entries, total, err := service.List(ctx, "dev", filter.Criteria{}, firstPage)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"Iron Wall", "Glass Cannon", "Wanderer", "Shadow Step"}, titles(entries))
	assert.True(t, entries[1].Outdated)

	others, total, err := service.List(ctx, "other", filter.Criteria{}, firstPage)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, others, 3)

	userOnly, _, err := service.List(ctx, "dev", filter.Criteria{UserContentOnly: true}, firstPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shadow Step"}, titles(userOnly))
}

func TestService_FacetsFollowOverlay(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	before, err := service.Facets(ctx, "dev")
	require.NoError(t, err)
	assert.Len(t, before[guide.FacetClass], 2)

	_, err = service.Create(ctx, "dev", catalog.Guide{Title: "Shadow Step", CharacterClass: "Rogue"})
	require.NoError(t, err)

	after, err := service.Facets(ctx, "dev")
	require.NoError(t, err)
	assert.Len(t, after[guide.FacetClass], 3)
}

func TestService_GuidesWithoutFacetValuePassThrough(t *testing.T) {
	service := newService(t)

	criteria := filter.Criteria{Selected: map[string][]string{guide.FacetClass: {"Mage"}}}
	entries, _, err := service.List(context.Background(), "", criteria, firstPage)
	require.NoError(t, err)

	assert.Equal(t, []string{"Glass Cannon", "Wanderer"}, titles(entries))
}

func TestService_LinksResolveOrHint(t *testing.T) {
	service := newService(t)

	links, err := service.Links(context.Background(), "", "g1")
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.True(t, links[0].Resolved())
	assert.Equal(t, catalog.ID("100"), links[0].Target.ID)
	assert.Equal(t, "Gear", links[0].Section)

	assert.False(t, links[1].Resolved())
	assert.Equal(t, "/items?search=Tower+Shield", links[1].SearchHint)
}

func TestService_DeletePrunesPin(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	created, err := service.Create(ctx, "dev", catalog.Guide{Title: "Temporary"})
	require.NoError(t, err)

	pinned, err := service.TogglePin(ctx, "dev", string(created.ID))
	require.NoError(t, err)
	assert.True(t, pinned)

	entries, _, err := service.List(ctx, "dev", filter.Criteria{}, firstPage)
	require.NoError(t, err)
	assert.Equal(t, "Temporary", entries[0].Title)

	require.NoError(t, service.Delete(ctx, "dev", string(created.ID)))

	_, err = service.TogglePin(ctx, "dev", string(created.ID))
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestService_BaseGuidesAreReadOnly(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Update(ctx, "dev", "g1", catalog.Guide{Title: "Hijack"})
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)

	err = service.Delete(ctx, "dev", "g1")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
}

func TestService_ImportAddsNFreshEntries(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	existing, err := service.Create(ctx, "dev", catalog.Guide{Title: "Existing"})
	require.NoError(t, err)

	document := []byte(`{"guides": [{"id": "` + string(existing.ID) + `", "title": "Copy"}, {"id": "g1", "title": "Another"}, {"title": ""}]}`)
	result, err := service.Import(ctx, "dev", document, catalog.FormatJSON)
	require.NoError(t, err)

	require.Len(t, result.Added, 2)
	assert.Len(t, result.Skipped, 1)

	known := map[catalog.ID]bool{existing.ID: true, "g1": true, "g2": true, "g3": true}
	for _, added := range result.Added {
		assert.False(t, known[added.ID])
		assert.True(t, added.UserContent)
		known[added.ID] = true
	}

	_, total, err := service.List(ctx, "dev", filter.Criteria{UserContentOnly: true}, firstPage)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestService_MalformedImportLeavesOverlayUnchanged(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Create(ctx, "dev", catalog.Guide{Title: "Keep"})
	require.NoError(t, err)

	_, err = service.Import(ctx, "dev", []byte(`{"guides": [{"title": "half`), catalog.FormatJSON)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	document, err := service.Export(ctx, "dev", catalog.FormatJSON)
	require.NoError(t, err)
	report, err := catalog.Import(document, catalog.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, report.Guides, 1)
}

func TestService_ViewRestoresOverlayGuide(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	created, err := service.Create(ctx, "dev", catalog.Guide{Title: "Mine"})
	require.NoError(t, err)

	view, err := service.View(ctx, "dev", "/guides?guide="+string(created.ID)+"&class=Mage")
	require.NoError(t, err)
	assert.Equal(t, guide.ModeDetail, view.Mode)
	assert.Equal(t, "Mine", view.Detail.Title)

	view, err = service.View(ctx, "other", "/guides?guide="+string(created.ID))
	require.NoError(t, err)
	assert.Equal(t, guide.ModeList, view.Mode)
}
