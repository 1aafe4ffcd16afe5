// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quest

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/core/ledger"
	"github.com/taibuivan/gamecodex/internal/core/resolve"
	"github.com/taibuivan/gamecodex/internal/core/viewstate"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/pkg/pagination"
	"github.com/taibuivan/gamecodex/pkg/slice"
)

// # Service Layer

// Service orchestrates the quest browser for every device.
type Service struct {
	store   *catalog.Store
	quests  []catalog.Quest
	chains  *resolve.Index[catalog.Quest]
	live    ledger.Set
	ledgers *ledger.Service
	sync    *viewstate.Synchronizer
	logger  *slog.Logger
}

/*
NewService constructs a new [Service] over the loaded catalogue.

Description: The prerequisite name index is built once here. Quest names
shared by several quests are logged: chains through them follow the first
quest of that name.
*/
func NewService(store *catalog.Store, ledgers *ledger.Service, sync *viewstate.Synchronizer, logger *slog.Logger) *Service {
	quests := store.Quests()

	chains := resolve.NewIndex(quests,
		func(q catalog.Quest) string { return q.Name },
		func(q catalog.Quest) string { return q.RequiredQuest },
	)
	if duplicates := chains.Duplicates(); len(duplicates) > 0 {
		logger.Warn("quest_names_ambiguous",
			slog.Int("count", len(duplicates)),
			slog.Any("names", duplicates),
		)
	}

	ids := slice.Map(quests, func(q catalog.Quest) string { return string(q.ID) })

	return &Service{
		store:   store,
		quests:  quests,
		chains:  chains,
		live:    ledger.NewSet(ids...),
		ledgers: ledgers,
		sync:    sync,
		logger:  logger,
	}
}

// marks loads the pin and completion ledgers of a device. Anonymous callers get none.
func (service *Service) marks(context context.Context, deviceID string) (filter.Marks, error) {
	if deviceID == "" {
		return filter.Marks{}, nil
	}
	pinned, err := service.ledgers.Pins(context, deviceID, ledger.KindQuest)
	if err != nil {
		return filter.Marks{}, err
	}
	completed, err := service.ledgers.Completed(context, deviceID)
	if err != nil {
		return filter.Marks{}, err
	}
	return filter.Marks{Pinned: pinned, Completed: completed}, nil
}

func (service *Service) entry(quest catalog.Quest, marks filter.Marks) Entry {
	id := string(quest.ID)
	return Entry{
		Quest:     quest,
		Badge:     quest.Badge(),
		Rarity:    quest.Rarity(),
		Pinned:    marks.Pinned != nil && marks.Pinned.Has(id),
		Completed: marks.Completed != nil && marks.Completed.Has(id),
	}
}

// # Browsing

/*
List filters, orders and pages the quests for a device.

Parameters:
  - context: context.Context
  - deviceID: string (Empty for anonymous callers: no pins, no completions)
  - criteria: filter.Criteria
  - page: pagination.Params

Returns:
  - []Entry: The requested page
  - int: Total number of matching quests
  - error: Device store failures
*/
func (service *Service) List(context context.Context, deviceID string, criteria filter.Criteria, page pagination.Params) ([]Entry, int, error) {
	marks, err := service.marks(context, deviceID)
	if err != nil {
		return nil, 0, err
	}

	ordered := filter.Apply(service.quests, Schema, criteria, marks)
	window := pagination.Window(ordered, page)

	entries := slice.Map(window, func(q catalog.Quest) Entry { return service.entry(q, marks) })
	return entries, len(ordered), nil
}

// Facets returns the facet choices with the number of quests carrying each.
func (service *Service) Facets() map[string][]facet.Choice {
	return facet.BuildCounts(service.quests, Facets)
}

// Get returns a quest with its prerequisite chain.
func (service *Service) Get(context context.Context, deviceID string, id string) (*Detail, error) {
	quest, ok := service.store.Quest(catalog.ID(id))
	if !ok {
		return nil, apperr.NotFound("Quest")
	}

	marks, err := service.marks(context, deviceID)
	if err != nil {
		return nil, err
	}

	chain := slice.Map(service.chains.Chain(quest.Name), func(q catalog.Quest) Entry { return service.entry(q, marks) })

	return &Detail{
		Entry:    service.entry(quest, marks),
		Chain:    chain,
		ShareURL: service.sync.ShareURL(id),
	}, nil
}

// Chain resolves the prerequisite chain of a quest, root first.
func (service *Service) Chain(id string) ([]catalog.Quest, error) {
	quest, ok := service.store.Quest(catalog.ID(id))
	if !ok {
		return nil, apperr.NotFound("Quest")
	}
	return service.chains.Chain(quest.Name), nil
}

// ChainByName resolves the chain starting at the quest called name.
func (service *Service) ChainByName(name string) []catalog.Quest {
	return service.chains.Chain(name)
}

// # Device Ledger

// TogglePin flips the pin of a live quest.
func (service *Service) TogglePin(context context.Context, deviceID string, id string) (bool, error) {
	if !service.live.Has(id) {
		return false, apperr.NotFound("Quest")
	}
	return service.ledgers.TogglePin(context, deviceID, ledger.KindQuest, id)
}

// ToggleCompletion flips the completion mark of a live quest.
func (service *Service) ToggleCompletion(context context.Context, deviceID string, id string) (bool, error) {
	if !service.live.Has(id) {
		return false, apperr.NotFound("Quest")
	}
	return service.ledgers.ToggleCompletion(context, deviceID, id)
}

// Reconcile prunes the device's quest ledgers against the live quests.
func (service *Service) Reconcile(context context.Context, deviceID string) ([]string, error) {
	return service.ledgers.Reconcile(context, deviceID, ledger.KindQuest, service.live)
}

// # View State

/*
View restores the page state from an address, once at mount.

Description: Ledgers are reconciled first so that stale ids from an older
catalogue disappear. When the address carries the id of a live quest the
detail view opens directly, otherwise the list view is shown.
*/
func (service *Service) View(context context.Context, deviceID string, address string) (*View, error) {
	if deviceID != "" {
		if _, err := service.Reconcile(context, deviceID); err != nil {
			return nil, err
		}
	}

	id, ok := service.sync.Restore(address, service.live.Has)
	if !ok {
		return &View{Mode: ModeList}, nil
	}

	detail, err := service.Get(context, deviceID, id)
	if err != nil {
		return nil, err
	}
	return &View{Mode: ModeDetail, Detail: detail}, nil
}

// Exists reports whether id belongs to the live quests.
func (service *Service) Exists(_ context.Context, _ string, id string) bool {
	return service.live.Has(id)
}
