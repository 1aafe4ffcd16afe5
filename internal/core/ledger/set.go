// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ledger keeps the per-device sets of pinned and completed entity ids.

The package is split in two layers:

  - Transitions: [Set], [Toggle] and [Prune] are pure functions (old set +
    action -> new set) with no I/O.
  - Persistence: [Ledger] loads a set from the device store, applies a
    transition and writes the result back.

Pins only affect ordering and badges, never whether an entity is shown.
*/
package ledger

import (
	"encoding/json"
	"slices"
)

// # Pure Transitions

// Set is an immutable set of entity ids. The zero value is the empty set.
type Set struct {
	ids map[string]struct{}
}

// NewSet builds a set from ids, ignoring empty strings.
func NewSet(ids ...string) Set {
	set := Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			set.ids[id] = struct{}{}
		}
	}
	return set
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of ids.
func (s Set) Len() int { return len(s.ids) }

// IDs returns the ids in lexical order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether both sets hold the same ids.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes an array of ids.
func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)
	return nil
}

// Toggle adds id if absent and removes it if present. Applying it twice with
// the same id returns an equal set.
func Toggle(set Set, id string) Set {
	next := NewSet(set.IDs()...)
	if id == "" {
		return next
	}
	if next.Has(id) {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// Prune keeps only the ids present in live and reports the removed ones in
// lexical order. It never adds ids.
func Prune(set Set, live Set) (Set, []string) {
	kept := NewSet()
	removed := []string{}
	for _, id := range set.IDs() {
		if live.Has(id) {
			kept.ids[id] = struct{}{}
		} else {
			removed = append(removed, id)
		}
	}
	return kept, removed
}
