// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package facet derives the multi-select filter choices of a collection.

A facet is a categorical attribute (class, faction, quest giver, build type).
Its choices are the distinct non-empty values observed in the collection,
case-sensitive and sorted lexicographically. Multi-valued attributes are split
into individual values by the extractor before distinctness is computed.

Everything here is a pure function of its input collection.
*/
package facet

import (
	"slices"
	"strings"
)

// Def names a facet and extracts its values from an entity.
type Def[T any] struct {
	Name   string
	Values func(T) []string
}

// Single adapts a single-valued attribute into a [Def] extractor.
func Single[T any](attribute func(T) string) func(T) []string {
	return func(entity T) []string {
		if value := strings.TrimSpace(attribute(entity)); value != "" {
			return []string{value}
		}
		return nil
	}
}

// Index maps each facet name to its sorted distinct values.
type Index map[string][]string

// Values returns the distinct non-empty values of one facet, sorted.
func Values[T any](items []T, extract func(T) []string) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, value := range extract(item) {
			if value = strings.TrimSpace(value); value != "" {
				seen[value] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}

// Build computes the [Index] of every facet in defs.
func Build[T any](items []T, defs []Def[T]) Index {
	index := make(Index, len(defs))
	for _, def := range defs {
		index[def.Name] = Values(items, def.Values)
	}
	return index
}

// # Counts

// Choice is a facet value with the number of entities carrying it.
type Choice struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Count reports, in the order of [Values], how many entities carry each value.
// An entity listing the same value twice is counted once.
func Count[T any](items []T, extract func(T) []string) []Choice {
	counts := make(map[string]int)
	for _, item := range items {
		counted := make(map[string]struct{})
		for _, value := range extract(item) {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			if _, done := counted[value]; done {
				continue
			}
			counted[value] = struct{}{}
			counts[value]++
		}
	}

	choices := make([]Choice, 0, len(counts))
	for _, value := range Values(items, extract) {
		choices = append(choices, Choice{Value: value, Count: counts[value]})
	}
	return choices
}

// BuildCounts computes [Count] for every facet in defs.
func BuildCounts[T any](items []T, defs []Def[T]) map[string][]Choice {
	result := make(map[string][]Choice, len(defs))
	for _, def := range defs {
		result[def.Name] = Count(items, def.Values)
	}
	return result
}
