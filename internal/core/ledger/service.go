// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ledger

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gamecodex/internal/platform/kv"
)

// # Service Layer

// Kind selects the pin ledger of an entity kind.
type Kind string

const (
	KindQuest Kind = "quest"
	KindGuide Kind = "guide"
)

func (k Kind) pins() Name {
	if k == KindGuide {
		return PinnedGuides
	}
	return PinnedQuests
}

// Service exposes the pin and completion operations for any device.
type Service struct {
	store  kv.Store
	logger *slog.Logger
}

// NewService constructs a new [Service] over the shared device store.
func NewService(store kv.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// For returns the ledger of one device.
func (service *Service) For(deviceID string) *Ledger {
	return New(kv.Scoped(service.store, deviceID), service.logger.With(slog.String("device_id", deviceID)))
}

/*
TogglePin flips the pin of an entity.

Parameters:
  - context: context.Context
  - deviceID: string
  - kind: Kind (quest or guide)
  - id: string (Entity identifier)

Returns:
  - bool: Whether the entity is pinned after the call
  - error: Backend I/O failures
*/
func (service *Service) TogglePin(context context.Context, deviceID string, kind Kind, id string) (bool, error) {
	return service.For(deviceID).Toggle(context, kind.pins(), id)
}

// IsPinned reports whether the entity is pinned on the device.
func (service *Service) IsPinned(context context.Context, deviceID string, kind Kind, id string) (bool, error) {
	return service.For(deviceID).Contains(context, kind.pins(), id)
}

// Pins returns the pinned ids of a kind.
func (service *Service) Pins(context context.Context, deviceID string, kind Kind) (Set, error) {
	return service.For(deviceID).Load(context, kind.pins())
}

// ToggleCompletion flips the completion mark of a quest.
func (service *Service) ToggleCompletion(context context.Context, deviceID string, id string) (bool, error) {
	return service.For(deviceID).Toggle(context, CompletedQuests, id)
}

// Completed returns the completed quest ids.
func (service *Service) Completed(context context.Context, deviceID string) (Set, error) {
	return service.For(deviceID).Load(context, CompletedQuests)
}

/*
Reconcile drops persisted ids of a kind that are no longer in the live
collection. For quests both the pin and completion ledgers are pruned.

Parameters:
  - live: Set (Ids of the merged base + overlay collection)

Returns:
  - []string: Removed ids across the pruned ledgers
  - error: Backend I/O failures
*/
func (service *Service) Reconcile(context context.Context, deviceID string, kind Kind, live Set) ([]string, error) {
	ledger := service.For(deviceID)

	names := []Name{kind.pins()}
	if kind == KindQuest {
		names = append(names, CompletedQuests)
	}

	removed := []string{}
	for _, name := range names {
		dropped, err := ledger.Prune(context, name, live)
		if err != nil {
			return nil, err
		}
		removed = append(removed, dropped...)
	}
	return removed, nil
}
