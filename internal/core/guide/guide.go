// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package guide serves the build-guide browser.

The live guide collection of a device is the base guides followed by the
device's user-authored overlay. Every derived view (facets, filtered list,
view-state restore) is recomputed from that merged collection, and the pin
ledger is reconciled against it after each overlay change.

Equipment entries name items; [Service.Links] resolves them against the item
catalogue or falls back to a search on the items page.
*/
package guide

import (
	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/core/resolve"
)

// # Facets

const (
	FacetClass     = "class"
	FacetBuildType = "build_type"
)

// # Sort Keys

const (
	// SortSource keeps the catalogue order with user guides last.
	SortSource = ""

	// SortTitle orders by title using locale collation.
	SortTitle = "title"
)

// ItemsSearchPath is the items page used for unresolved equipment links.
const ItemsSearchPath = "/items"

// Facets lists the multi-select facets of the guide browser.
var Facets = []facet.Def[catalog.Guide]{
	{Name: FacetClass, Values: facet.Single(func(g catalog.Guide) string { return g.CharacterClass })},
	{Name: FacetBuildType, Values: facet.Single(func(g catalog.Guide) string { return g.BuildType })},
}

// Schema binds guide fields to the filter criteria.
var Schema = filter.Schema[catalog.Guide]{
	ID: func(g catalog.Guide) string { return string(g.ID) },
	Search: []func(catalog.Guide) string{
		func(g catalog.Guide) string { return g.Title },
		func(g catalog.Guide) string { return g.Author },
		func(g catalog.Guide) string { return g.CharacterClass },
		func(g catalog.Guide) string { return g.BuildType },
	},
	Facets:      Facets,
	UserContent: func(g catalog.Guide) bool { return g.UserContent },
	Sorts: map[string]filter.Sort[catalog.Guide]{
		SortTitle: {Text: func(g catalog.Guide) string { return g.Title }},
	},
}

var facetParams = map[string]string{
	"class":      FacetClass,
	"build_type": FacetBuildType,
}

// # Views

// Entry is a guide as shown in the list.
type Entry struct {
	catalog.Guide
	Pinned   bool `json:"pinned"`
	Outdated bool `json:"outdated"`
}

// EquipmentLink is one equipment slot resolved against the item catalogue.
type EquipmentLink struct {
	Section string `json:"section"`
	Slot    string `json:"slot"`
	resolve.Link[catalog.Item]
}

// Detail is an opened guide.
type Detail struct {
	Entry
	Links    []EquipmentLink `json:"links"`
	ShareURL string          `json:"share_url"`
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

// statusOutdated marks guides written for an older game version.
const statusOutdated = "Outdated"
