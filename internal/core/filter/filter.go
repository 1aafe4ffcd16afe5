// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filter turns a collection and a set of criteria into the ordered list
shown by a browser page.

The pipeline always composes as:

	filter -> stable sort by criterion -> stable partition by pin

Each stage is a pure function of its inputs, so applying the same criteria to
an already filtered result yields the same result.
*/
package filter

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/pkg/slice"
)

// # Range Defaults

const (
	// DefaultMin is the lower bound of the level range when none is given.
	DefaultMin = 0

	// DefaultMax is the upper bound of the level range when none is given.
	DefaultMax = 150
)

// Range is an inclusive numeric range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultRange returns the 0-150 level range.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// Contains reports whether value lies inside the range. Bounds given in the
// wrong order are swapped.
func (r Range) Contains(value int) bool {
	low, high := r.Min, r.Max
	if low > high {
		low, high = high, low
	}
	return value >= low && value <= high
}

// # Schema

// Membership answers whether an id belongs to a set (pins, completions).
type Membership interface {
	Has(id string) bool
}

// Sort is one sort key. Exactly one of Text or Number is set: Text sorts
// ascending by locale collation, Number sorts descending.
type Sort[T any] struct {
	Text   func(T) string
	Number func(T) int
}

/*
Schema describes how criteria apply to one entity kind.

Fields left nil disable the matching criterion:

  - ID: Identity used for pin and completion lookups.
  - Search: Text fields matched case-insensitively by the search term.
  - Facets: Multi-select facets.
  - Number: Field compared against the range (missing values read as 0).
  - Chain: Reports chain membership for the hide-chain toggle.
  - UserContent: Reports overlay membership for the user-content-only toggle.
  - Sorts: Named sort keys.
*/
type Schema[T any] struct {
	ID          func(T) string
	Search      []func(T) string
	Facets      []facet.Def[T]
	Number      func(T) int
	Chain       func(T) bool
	UserContent func(T) bool
	Sorts       map[string]Sort[T]
}

// # Criteria

// Criteria is the full filter state of a browser page.
type Criteria struct {
	Search          string              `json:"search,omitempty"`
	Selected        map[string][]string `json:"selected,omitempty"`
	Range           *Range              `json:"range,omitempty"`
	HideChain       bool                `json:"hide_chain,omitempty"`
	HideCompleted   bool                `json:"hide_completed,omitempty"`
	UserContentOnly bool                `json:"user_content_only,omitempty"`
	Sort            string              `json:"sort,omitempty"`
}

// Marks carries the device ledgers consulted while filtering and ordering.
type Marks struct {
	Pinned    Membership
	Completed Membership
}

// Reset returns criteria with every facet value selected and the default
// range, which filters nothing.
func Reset(index facet.Index, sort string) Criteria {
	selected := make(map[string][]string, len(index))
	for name, values := range index {
		selected[name] = slices.Clone(values)
	}
	r := DefaultRange()
	return Criteria{Selected: selected, Range: &r, Sort: sort}
}

// # Pipeline

/*
Apply filters, sorts and pin-partitions items.

Description:
  - Search: An entity matches if ANY search field contains the term, ignoring case.
  - Facets: Selecting none, or every value available in items, skips the facet.
    Otherwise an entity passes if one of its values is selected or it has no value.
  - Range: Missing numbers compare as 0; nil range means 0-150.
  - Toggles: Hide chain members, hide completed ids, keep only user content.
  - Order: Stable sort by the named key, then pinned entities first.

Returns:
  - []T: Ordered result, possibly empty, never nil
*/
func Apply[T any](items []T, schema Schema[T], criteria Criteria, marks Marks) []T {
	facetMatchers := buildFacetMatchers(items, schema.Facets, criteria.Selected)
	term := strings.ToLower(criteria.Search)

	bounds := DefaultRange()
	if criteria.Range != nil {
		bounds = *criteria.Range
	}

	result := slice.Filter(items, func(item T) bool {
		if term != "" && !matchesSearch(item, schema.Search, term) {
			return false
		}
		for _, matcher := range facetMatchers {
			if !matcher(item) {
				return false
			}
		}
		if schema.Number != nil && !bounds.Contains(schema.Number(item)) {
			return false
		}
		if criteria.HideChain && schema.Chain != nil && schema.Chain(item) {
			return false
		}
		if criteria.HideCompleted && marks.Completed != nil && schema.ID != nil && marks.Completed.Has(schema.ID(item)) {
			return false
		}
		if criteria.UserContentOnly && schema.UserContent != nil && !schema.UserContent(item) {
			return false
		}
		return true
	})

	if key, ok := schema.Sorts[criteria.Sort]; ok {
		sortStable(result, key)
	}

	if marks.Pinned != nil && schema.ID != nil {
		result = slice.StablePartition(result, func(item T) bool {
			return marks.Pinned.Has(schema.ID(item))
		})
	}

	return result
}

func matchesSearch[T any](item T, fields []func(T) string, term string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}

// buildFacetMatchers returns one predicate per facet that actually filters.
func buildFacetMatchers[T any](items []T, defs []facet.Def[T], selected map[string][]string) []func(T) bool {
	var matchers []func(T) bool

	for _, def := range defs {
		chosen := selected[def.Name]
		if len(chosen) == 0 {
			continue
		}

		chosenSet := make(map[string]struct{}, len(chosen))
		for _, value := range chosen {
			chosenSet[value] = struct{}{}
		}

		if coversAll(facet.Values(items, def.Values), chosenSet) {
			continue
		}

		extract := def.Values
		matchers = append(matchers, func(item T) bool {
			values := extract(item)
			applicable := false
			for _, value := range values {
				value = strings.TrimSpace(value)
				if value == "" {
					continue
				}
				applicable = true
				if _, ok := chosenSet[value]; ok {
					return true
				}
			}
			return !applicable
		})
	}

	return matchers
}

func coversAll(available []string, chosen map[string]struct{}) bool {
	for _, value := range available {
		if _, ok := chosen[value]; !ok {
			return false
		}
	}
	return true
}

func sortStable[T any](items []T, key Sort[T]) {
	switch {
	case key.Text != nil:
		collator := collate.New(language.English)
		slices.SortStableFunc(items, func(a, b T) int {
			return collator.CompareString(key.Text(a), key.Text(b))
		})
	case key.Number != nil:
		slices.SortStableFunc(items, func(a, b T) int {
			return cmp.Compare(key.Number(b), key.Number(a))
		})
	}
}
