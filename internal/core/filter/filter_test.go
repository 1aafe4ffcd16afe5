// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/internal/core/filter"
)

type quest struct {
	id      string
	name    string
	classes string
	npc     string
	level   int
	gold    int
	prereq  string
}

type idSet map[string]bool

func (s idSet) Has(id string) bool { return s[id] }

var schema = filter.Schema[quest]{
	ID:     func(q quest) string { return q.id },
	Search: []func(quest) string{func(q quest) string { return q.name }, func(q quest) string { return q.npc }},
	Facets: []facet.Def[quest]{
		{Name: "class", Values: func(q quest) []string { return strings.Fields(q.classes) }},
		{Name: "npc", Values: facet.Single(func(q quest) string { return q.npc })},
	},
	Number: func(q quest) int { return q.level },
	Chain:  func(q quest) bool { return q.prereq != "" },
	Sorts: map[string]filter.Sort[quest]{
		"name": {Text: func(q quest) string { return q.name }},
		"gold": {Number: func(q quest) int { return q.gold }},
	},
}

var quests = []quest{
	{id: "1", name: "Wolf Hunt", classes: "Warrior", npc: "Bran", level: 10, gold: 50},
	{id: "2", name: "arcane Study", classes: "Mage", npc: "Ilsa", level: 40, gold: 500},
	{id: "3", name: "Shadow Work", classes: "Rogue", npc: "Bran", level: 80, gold: 500, prereq: "Wolf Hunt"},
	{id: "4", name: "Village Errand", level: 0, gold: 5},
	{id: "5", name: "Elder Trial", classes: "Warrior Mage", npc: "Ilsa", level: 151, gold: 9000},
}

func ids(items []quest) []string {
	out := make([]string, len(items))
	for i, q := range items {
		out[i] = q.id
	}
	return out
}

func TestApply_DefaultCriteriaKeepsSourceOrderWithinRange(t *testing.T) {
	result := filter.Apply(quests, schema, filter.Criteria{}, filter.Marks{})

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(result))
}

func TestApply_SearchMatchesAnyFieldIgnoringCase(t *testing.T) {
	result := filter.Apply(quests, schema, filter.Criteria{Search: "BRAN"}, filter.Marks{})
	assert.Equal(t, []string{"1", "3"}, ids(result))

	result = filter.Apply(quests, schema, filter.Criteria{Search: "arcane"}, filter.Marks{})
	assert.Equal(t, []string{"2"}, ids(result))
}

func TestApply_SelectingAllOrNoneEqualsOmitting(t *testing.T) {
	omitted := filter.Apply(quests, schema, filter.Criteria{}, filter.Marks{})

	tests := []struct {
		name     string
		selected []string
	}{
		{"none", []string{}},
		{"all", []string{"Warrior", "Mage", "Rogue"}},
		{"all_plus_unknown", []string{"Rogue", "Mage", "Warrior", "Paladin"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			criteria := filter.Criteria{Selected: map[string][]string{"class": tc.selected}}
			assert.Equal(t, omitted, filter.Apply(quests, schema, criteria, filter.Marks{}))
		})
	}
}

func TestApply_SubsetIntersectsAndPassesEmptyValues(t *testing.T) {
	criteria := filter.Criteria{Selected: map[string][]string{"class": {"Mage"}}}

	result := filter.Apply(quests, schema, criteria, filter.Marks{})

	// "4" has no class requirement and passes untouched.
	assert.Equal(t, []string{"2", "4"}, ids(result))
}

func TestApply_RangeTreatsMissingAsZero(t *testing.T) {
	r := filter.Range{Min: 0, Max: 20}
	result := filter.Apply(quests, schema, filter.Criteria{Range: &r}, filter.Marks{})
	assert.Equal(t, []string{"1", "4"}, ids(result))

	r = filter.Range{Min: 100, Max: 200}
	result = filter.Apply(quests, schema, filter.Criteria{Range: &r}, filter.Marks{})
	assert.Equal(t, []string{"5"}, ids(result))
}

func TestApply_Toggles(t *testing.T) {
	result := filter.Apply(quests, schema, filter.Criteria{HideChain: true}, filter.Marks{})
	assert.Equal(t, []string{"1", "2", "4"}, ids(result))

	marks := filter.Marks{Completed: idSet{"1": true}}
	result = filter.Apply(quests, schema, filter.Criteria{HideCompleted: true}, marks)
	assert.Equal(t, []string{"2", "3", "4"}, ids(result))
}

func TestApply_SortThenPinPartition(t *testing.T) {
	r := filter.Range{Min: 0, Max: 200}
	criteria := filter.Criteria{Sort: "gold", Range: &r}
	marks := filter.Marks{Pinned: idSet{"4": true, "3": true}}

	result := filter.Apply(quests, schema, criteria, marks)

	// gold desc: 5(9000) 2(500) 3(500) 1(50) 4(5); pinned 3 and 4 move first in that order.
	assert.Equal(t, []string{"3", "4", "5", "2", "1"}, ids(result))
}

func TestApply_NameSortUsesCollation(t *testing.T) {
	result := filter.Apply(quests, schema, filter.Criteria{Sort: "name"}, filter.Marks{})

	assert.Equal(t, []string{"2", "3", "4", "1"}, ids(result))
}

func TestApply_IsIdempotent(t *testing.T) {
	r := filter.Range{Min: 0, Max: 100}
	criteriaSet := []filter.Criteria{
		{},
		{Sort: "name"},
		{Search: "a", Sort: "gold", Range: &r},
		{Selected: map[string][]string{"class": {"Warrior"}, "npc": {"Bran"}}, HideChain: true},
		{Selected: map[string][]string{"class": {"Rogue", "Mage"}}, Sort: "gold"},
	}
	marks := filter.Marks{Pinned: idSet{"2": true}, Completed: idSet{"1": true}}

	for _, criteria := range criteriaSet {
		once := filter.Apply(quests, schema, criteria, marks)
		twice := filter.Apply(once, schema, criteria, marks)
		assert.Equal(t, once, twice)
	}
}

func TestApply_EmptyResultIsNotNil(t *testing.T) {
	result := filter.Apply(quests, schema, filter.Criteria{Search: "nothing matches"}, filter.Marks{})

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestReset_FiltersNothing(t *testing.T) {
	index := facet.Build(quests, schema.Facets)
	criteria := filter.Reset(index, "")

	assert.Equal(t,
		filter.Apply(quests, schema, filter.Criteria{}, filter.Marks{}),
		filter.Apply(quests, schema, criteria, filter.Marks{}),
	)
}
