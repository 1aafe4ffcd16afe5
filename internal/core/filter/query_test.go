// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/filter"
)

func TestFromQuery(t *testing.T) {
	values, err := url.ParseQuery("q=+wolf+&class=Mage,Rogue&npc=Bran&min_level=10&hide_chain=true&sort=gold")
	require.NoError(t, err)

	criteria := filter.FromQuery(values, map[string]string{"class": "class", "npc": "npc", "faction": "faction"}, "name")

	assert.Equal(t, "wolf", criteria.Search)
	assert.Equal(t, []string{"Mage", "Rogue"}, criteria.Selected["class"])
	assert.Equal(t, []string{"Bran"}, criteria.Selected["npc"])
	assert.NotContains(t, criteria.Selected, "faction")
	require.NotNil(t, criteria.Range)
	assert.Equal(t, filter.Range{Min: 10, Max: 150}, *criteria.Range)
	assert.True(t, criteria.HideChain)
	assert.False(t, criteria.HideCompleted)
	assert.Equal(t, "gold", criteria.Sort)
}

func TestFromQuery_RepeatedValuesKeepCommas(t *testing.T) {
	values, err := url.ParseQuery("npc=Grimbold%2C+the+Smith&npc=Marta&class=Mage%2CRogue")
	require.NoError(t, err)

	criteria := filter.FromQuery(values, map[string]string{"npc": "npc", "class": "class"}, "name")

	assert.Equal(t, []string{"Grimbold, the Smith", "Marta"}, criteria.Selected["npc"])
	assert.Equal(t, []string{"Mage", "Rogue"}, criteria.Selected["class"])
}

func TestFromQuery_Defaults(t *testing.T) {
	criteria := filter.FromQuery(url.Values{}, nil, "name")

	assert.Nil(t, criteria.Range)
	assert.Equal(t, "name", criteria.Sort)
	assert.Empty(t, criteria.Search)
}
