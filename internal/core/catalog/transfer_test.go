// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
)

func TestExportImport_ReassignsIDs(t *testing.T) {
	ctx := context.Background()
	overlay, _ := newOverlay(t)

	original, err := overlay.AppendAll(ctx, []catalog.Guide{
		{Title: "Tank", CharacterClass: "Warrior"},
		{Title: "Healer", CharacterClass: "Priest"},
	})
	require.NoError(t, err)

	for _, format := range []catalog.Format{catalog.FormatJSON, catalog.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			document, err := catalog.Export(original, format)
			require.NoError(t, err)

			report, err := catalog.Import(document, format)
			require.NoError(t, err)
			require.Len(t, report.Guides, 2)
			assert.Empty(t, report.Skipped)

			imported, err := overlay.AppendAll(ctx, report.Guides)
			require.NoError(t, err)
			for i, guide := range imported {
				assert.NotEqual(t, original[i].ID, guide.ID)
				assert.True(t, guide.UserContent)
				assert.Equal(t, original[i].Title, guide.Title)
			}
		})
	}

	guides, err := overlay.List(ctx)
	require.NoError(t, err)
	assert.Len(t, guides, 6)

	seen := map[catalog.ID]bool{}
	for _, guide := range guides {
		assert.False(t, seen[guide.ID], "duplicate id %s", guide.ID)
		seen[guide.ID] = true
	}
}

func TestImport_AcceptsBareList(t *testing.T) {
	report, err := catalog.Import([]byte(`[{"id": "x", "title": "Solo"}]`), catalog.FormatJSON)
	require.NoError(t, err)
	require.Len(t, report.Guides, 1)
	assert.Empty(t, report.Guides[0].ID)
	assert.True(t, report.Guides[0].UserContent)
}

func TestImport_SkipsInvalidEntries(t *testing.T) {
	document := `{"guides": [{"title": "Good"}, {"author": "no title"}, {"title": "Also good"}]}`

	report, err := catalog.Import([]byte(document), catalog.FormatJSON)
	require.NoError(t, err)

	assert.Len(t, report.Guides, 2)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 1, report.Skipped[0].Index)
	assert.Contains(t, report.Skipped[0].Reason, "title")
}

func TestImport_MalformedDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		format   catalog.Format
	}{
		{"empty", "   ", catalog.FormatJSON},
		{"truncated_json", `{"guides": [`, catalog.FormatJSON},
		{"object_without_guides", `{"items": []}`, catalog.FormatJSON},
		{"yaml_scalar", "just text", catalog.FormatYAML},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Import([]byte(tc.document), tc.format)
			require.Error(t, err)
			assert.True(t, apperr.IsAppError(err))
		})
	}
}

func TestParseFormat(t *testing.T) {
	format, err := catalog.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, catalog.FormatJSON, format)

	format, err = catalog.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, catalog.FormatYAML, format)

	_, err = catalog.ParseFormat("xml")
	assert.Error(t, err)
}
