// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ledger

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
)

// # Ledger Names

// Name selects one persisted ledger of a device.
type Name string

const (
	PinnedQuests    Name = constants.KeyPinsQuests
	PinnedGuides    Name = constants.KeyPinsGuides
	CompletedQuests Name = constants.KeyCompletedQuests
)

// # Persistence

// Ledger reads and writes the sets of one device.
type Ledger struct {
	store  kv.Store
	logger *slog.Logger
}

// New binds a ledger to a device-scoped store.
func New(store kv.Store, logger *slog.Logger) *Ledger {
	return &Ledger{store: store, logger: logger}
}

/*
Load returns the persisted set under name.

Description: An absent key is the empty set. A corrupt or wrong-shaped value
is discarded with a warning and also reads as the empty set.

Returns:
  - Set: Persisted ids
  - error: Backend I/O failures only
*/
func (ledger *Ledger) Load(ctx context.Context, name Name) (Set, error) {
	return kv.LoadJSON[Set](ctx, ledger.store, string(name), ledger.logger)
}

// Save replaces the persisted set under name.
func (ledger *Ledger) Save(ctx context.Context, name Name, set Set) error {
	return kv.SaveJSON(ctx, ledger.store, string(name), set)
}

// Toggle flips id in the named set and reports whether it is now a member.
func (ledger *Ledger) Toggle(ctx context.Context, name Name, id string) (bool, error) {
	current, err := ledger.Load(ctx, name)
	if err != nil {
		return false, err
	}

	next := Toggle(current, id)
	if err := ledger.Save(ctx, name, next); err != nil {
		return false, err
	}
	return next.Has(id), nil
}

// Contains reports whether id is in the named set.
func (ledger *Ledger) Contains(ctx context.Context, name Name, id string) (bool, error) {
	current, err := ledger.Load(ctx, name)
	if err != nil {
		return false, err
	}
	return current.Has(id), nil
}

/*
Prune removes from the named set every id absent from live.

Description: The set is only rewritten when something was removed.

Returns:
  - []string: Removed ids in lexical order
  - error: Backend I/O failures
*/
func (ledger *Ledger) Prune(ctx context.Context, name Name, live Set) ([]string, error) {
	current, err := ledger.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	kept, removed := Prune(current, live)
	if len(removed) == 0 {
		return removed, nil
	}

	if err := ledger.Save(ctx, name, kept); err != nil {
		return nil, err
	}

	ledger.logger.InfoContext(ctx, "ledger_pruned",
		slog.String("ledger", string(name)),
		slog.Int("removed", len(removed)),
	)
	return removed, nil
}
