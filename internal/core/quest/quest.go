// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package quest serves the quest browser.

It composes the catalogue engine for one entity kind: facets and filtering
over the base quests, prerequisite chains, pins and completions of the calling
device, and the quest view-state token.

Quests have no user-authored overlay, so the live collection is the base
collection for the lifetime of the process.
*/
package quest

import (
	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/internal/core/filter"
)

// # Facets

const (
	FacetClass   = "class"
	FacetFaction = "faction"
	FacetNPC     = "npc"
)

// # Sort Keys

const (
	SortName       = "name"
	SortLevel      = "level"
	SortExperience = "experience"
	SortGold       = "gold"
)

// Facets lists the multi-select facets of the quest browser.
var Facets = []facet.Def[catalog.Quest]{
	{Name: FacetClass, Values: catalog.Quest.Classes},
	{Name: FacetFaction, Values: facet.Single(catalog.Quest.Faction)},
	{Name: FacetNPC, Values: facet.Single(catalog.Quest.Giver)},
}

// Schema binds quest fields to the filter criteria.
var Schema = filter.Schema[catalog.Quest]{
	ID: func(q catalog.Quest) string { return string(q.ID) },
	Search: []func(catalog.Quest) string{
		func(q catalog.Quest) string { return q.Name },
		func(q catalog.Quest) string { return q.Description },
		func(q catalog.Quest) string { return q.NpcQuestGiver },
		func(q catalog.Quest) string { return q.RequiredClassFaction },
	},
	Facets: Facets,
	Number: func(q catalog.Quest) int { return q.Level },
	Chain:  catalog.Quest.IsChain,
	Sorts: map[string]filter.Sort[catalog.Quest]{
		SortName:       {Text: func(q catalog.Quest) string { return q.Name }},
		SortLevel:      {Number: func(q catalog.Quest) int { return q.Level }},
		SortExperience: {Number: func(q catalog.Quest) int { return q.Experience }},
		SortGold:       {Number: func(q catalog.Quest) int { return q.Gold }},
	},
}

// facetParams maps list query parameters to facet names.
var facetParams = map[string]string{
	"class":   FacetClass,
	"faction": FacetFaction,
	"npc":     FacetNPC,
}

// # Views

// Entry is a quest as shown in the list, annotated for the calling device.
type Entry struct {
	catalog.Quest
	Badge     catalog.Badge  `json:"badge"`
	Rarity    catalog.Rarity `json:"rarity"`
	Pinned    bool           `json:"pinned"`
	Completed bool           `json:"completed"`
}

// Detail is an opened quest with its prerequisite chain and share address.
type Detail struct {
	Entry
	Chain    []Entry `json:"chain"`
	ShareURL string  `json:"share_url"`
}

// View is the page state restored from an address.
type View struct {
	Mode   string  `json:"mode"`
	Detail *Detail `json:"detail,omitempty"`
}

const (
	ModeList   = "list"
	ModeDetail = "detail"
)
