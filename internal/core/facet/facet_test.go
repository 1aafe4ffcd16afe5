// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gamecodex/internal/core/facet"
)

type record struct {
	classes string
	faction string
}

var defs = []facet.Def[record]{
	{Name: "class", Values: func(r record) []string { return strings.Fields(r.classes) }},
	{Name: "faction", Values: facet.Single(func(r record) string { return r.faction })},
}

func TestBuild_SplitsSortsAndDeduplicates(t *testing.T) {
	items := []record{
		{classes: "Warrior Mage", faction: "Order"},
		{classes: "Rogue", faction: " "},
		{classes: "Mage", faction: "Chaos"},
		{classes: "", faction: "order"},
	}

	index := facet.Build(items, defs)

	assert.Equal(t, []string{"Mage", "Rogue", "Warrior"}, index["class"])
	assert.Equal(t, []string{"Chaos", "Order", "order"}, index["faction"])
}

func TestBuild_IsIdempotent(t *testing.T) {
	items := []record{{classes: "Rogue Mage"}, {classes: "Warrior"}}

	first := facet.Build(items, defs)
	second := facet.Build(items, defs)

	assert.Equal(t, first, second)
}

func TestBuild_EmptyCollection(t *testing.T) {
	index := facet.Build[record](nil, defs)

	assert.NotNil(t, index["class"])
	assert.Empty(t, index["class"])
}

func TestCount(t *testing.T) {
	items := []record{
		{classes: "Warrior Mage"},
		{classes: "Mage Mage"},
		{classes: "Rogue"},
	}

	choices := facet.Count(items, defs[0].Values)

	assert.Equal(t, []facet.Choice{
		{Value: "Mage", Count: 2},
		{Value: "Rogue", Count: 1},
		{Value: "Warrior", Count: 1},
	}, choices)
}
