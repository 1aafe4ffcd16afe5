// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gamecodex/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", 1, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=10", 3, 10},
		{"negative_page", "?page=-2", 1, pagination.DefaultLimit},
		{"excessive_limit", "?limit=5000", 1, pagination.DefaultLimit},
		{"garbage", "?page=x&limit=y", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/quests"+tt.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Window(items, pagination.Params{Page: 3, Limit: 2}))
	assert.Equal(t, []int{}, pagination.Window(items, pagination.Params{Page: 9, Limit: 2}))
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 50, 101)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
