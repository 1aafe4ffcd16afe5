// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package resolve follows named references between catalogue entities.

References are stored as names, not ids. Resolution is two-phase: [NewIndex]
builds a name lookup once per collection, then [Index.ByName] and
[Index.Chain] answer in constant time per hop.

Known limitation: when two entities share a name, the first one in collection
order wins. [Index.Duplicates] reports the shared names so callers can flag them.
*/
package resolve

import (
	"net/url"
	"slices"
	"strings"
)

// MaxChainDepth is the maximum number of entities a chain walk returns. It is
// the only protection against reference cycles.
const MaxChainDepth = 20

// Index is a read-only name lookup over one collection.
type Index[T any] struct {
	byName     map[string]T
	next       func(T) string
	duplicates []string
}

/*
NewIndex builds the name lookup of items.

Parameters:
  - items: Collection in display order
  - name: Extracts the entity's display name, keyed without surrounding spaces
  - next: Extracts the name of the entity this one refers to (nil for leaf kinds)

Returns:
  - *Index[T]: Lookup where the first entity of a repeated name wins
*/
func NewIndex[T any](items []T, name func(T) string, next func(T) string) *Index[T] {
	index := &Index[T]{
		byName: make(map[string]T, len(items)),
		next:   next,
	}

	repeated := make(map[string]struct{})
	for _, item := range items {
		key := strings.TrimSpace(name(item))
		if key == "" {
			continue
		}
		if _, exists := index.byName[key]; exists {
			repeated[key] = struct{}{}
			continue
		}
		index.byName[key] = item
	}

	for key := range repeated {
		index.duplicates = append(index.duplicates, key)
	}
	slices.Sort(index.duplicates)

	return index
}

// ByName looks up an entity by exact name.
func (index *Index[T]) ByName(name string) (T, bool) {
	item, ok := index.byName[strings.TrimSpace(name)]
	return item, ok
}

/*
Chain walks the reference chain starting at startName.

Description: The entity named startName comes first, followed by the entity it
refers to, and so on. The walk stops when the reference is empty, when the
referenced name does not resolve, or after [MaxChainDepth] entities. A cycle
shorter than the cap repeats until the cap truncates it.

Returns:
  - []T: Root-first chain, empty if startName does not resolve
*/
func (index *Index[T]) Chain(startName string) []T {
	chain := []T{}
	if index.next == nil {
		if item, ok := index.ByName(startName); ok {
			chain = append(chain, item)
		}
		return chain
	}

	current := strings.TrimSpace(startName)
	for len(chain) < MaxChainDepth && current != "" {
		item, ok := index.byName[current]
		if !ok {
			break
		}
		chain = append(chain, item)
		current = strings.TrimSpace(index.next(item))
	}
	return chain
}

// Duplicates lists names shared by more than one entity, sorted.
func (index *Index[T]) Duplicates() []string {
	return slices.Clone(index.duplicates)
}

// Len reports the number of distinct names in the index.
func (index *Index[T]) Len() int {
	return len(index.byName)
}

// # Cross Links

// Link is a resolved named reference. When the target is missing, SearchHint
// carries an address on the target's browser page pre-filled with the name.
type Link[T any] struct {
	Name       string `json:"name"`
	Target     *T     `json:"target,omitempty"`
	SearchHint string `json:"search_hint,omitempty"`
}

// Resolved reports whether the link found its target.
func (l Link[T]) Resolved() bool {
	return l.Target != nil
}

// LinkTo resolves name against index, falling back to a search hint under
// searchPath (for example "/items").
func LinkTo[T any](index *Index[T], name, searchPath string) Link[T] {
	name = strings.TrimSpace(name)
	link := Link[T]{Name: name}

	if item, ok := index.ByName(name); ok {
		link.Target = &item
		return link
	}

	query := url.Values{}
	query.Set("search", name)
	link.SearchHint = searchPath + "?" + query.Encode()
	return link
}
