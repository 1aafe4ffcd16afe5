// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"log/slog"
	"slices"
)

// # Base Store

// Store holds the base collections. It is read-only after construction and
// safe for concurrent readers.
type Store struct {
	quests    []Quest
	guides    []Guide
	items     []Item
	questByID map[ID]int
	guideByID map[ID]int
}

/*
NewStore builds the base catalogue from decoded collections.

Description: Missing ids are derived with [DeriveID]. A record whose id repeats
an earlier one is dropped with a warning, so ids are unique within each
collection. Base guides are never user content.

Parameters:
  - quests, guides, items: Collections in source order
  - logger: *slog.Logger

Returns:
  - *Store: The immutable base catalogue
*/
func NewStore(quests []Quest, guides []Guide, items []Item, logger *slog.Logger) *Store {
	store := &Store{
		quests: assignIDs(KindQuest, quests, logger, questIdentity),
		guides: assignIDs(KindGuide, guides, logger, guideIdentity),
		items:  assignIDs(KindItem, items, logger, itemIdentity),
	}

	for i := range store.guides {
		store.guides[i].UserContent = false
	}

	store.questByID = make(map[ID]int, len(store.quests))
	for i, quest := range store.quests {
		store.questByID[quest.ID] = i
	}
	store.guideByID = make(map[ID]int, len(store.guides))
	for i, guide := range store.guides {
		store.guideByID[guide.ID] = i
	}

	return store
}

// Quests returns the quest collection in display order.
func (s *Store) Quests() []Quest { return slices.Clone(s.quests) }

// Guides returns the base guide collection in display order.
func (s *Store) Guides() []Guide { return slices.Clone(s.guides) }

// Items returns the item collection in display order.
func (s *Store) Items() []Item { return slices.Clone(s.items) }

// Quest looks up a quest by id.
func (s *Store) Quest(id ID) (Quest, bool) {
	i, ok := s.questByID[id]
	if !ok {
		return Quest{}, false
	}
	return s.quests[i], true
}

// Guide looks up a base guide by id.
func (s *Store) Guide(id ID) (Guide, bool) {
	i, ok := s.guideByID[id]
	if !ok {
		return Guide{}, false
	}
	return s.guides[i], true
}

// HasGuide reports whether id belongs to the base guide collection.
func (s *Store) HasGuide(id ID) bool {
	_, ok := s.guideByID[id]
	return ok
}

// Counts reports the size of each collection.
func (s *Store) Counts() map[Kind]int {
	return map[Kind]int{
		KindQuest: len(s.quests),
		KindGuide: len(s.guides),
		KindItem:  len(s.items),
	}
}

// Merge returns base followed by overlay. Neither input is modified.
func Merge(base, overlay []Guide) []Guide {
	merged := make([]Guide, 0, len(base)+len(overlay))
	merged = append(merged, base...)
	return append(merged, overlay...)
}
