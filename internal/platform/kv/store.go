// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kv is the device-local persistence collaborator of the catalog engine.

Every piece of per-device state (pinned and completed identifiers, the
user-authored overlay, UI preferences) is a serialized value under a string
key. The engine never talks to a concrete backend: it receives a [Store] in
its constructors, so tests run against [MemoryStore].

Backends:

  - MemoryStore: process-local map, the default and the test fake.
  - RedisStore: shared across API replicas.
  - PostgresStore: durable, schema managed by golang-migrate.
  - SQLiteStore: embedded file, used by codexctl and single-node servers.

Absent keys are never errors. Values that fail to decode are discarded by
[LoadJSON], logged, and replaced by the zero value.
*/
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/taibuivan/gamecodex/internal/platform/constants"
)

// Store is a key-value store with get/set/remove by string key.
type Store interface {
	// Get returns the value stored under key. found is false for absent keys.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// # Device Scoping

// scopedStore prefixes every key with a device namespace.
type scopedStore struct {
	inner  Store
	prefix string
}

// Scoped returns a view of store that confines all keys to deviceID.
func Scoped(store Store, deviceID string) Store {
	return &scopedStore{inner: store, prefix: constants.KeyPrefixDevice + deviceID + ":"}
}

func (s *scopedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scopedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scopedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

// # Structured Values

/*
LoadJSON reads and decodes the value under key.

Description: An absent key yields the zero value of T. A value that cannot be
decoded into T is treated the same way and reported at Warn level; the corrupt
value is left in place until the next successful [SaveJSON] overwrites it.

Returns:
  - T: Decoded value or zero value
  - error: Only backend I/O failures
*/
func LoadJSON[T any](ctx context.Context, store Store, key string, logger *slog.Logger) (T, error) {
	var value T

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return value, fmt.Errorf("kv: get %q: %w", key, err)
	}
	if !found || len(raw) == 0 {
		return value, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		logger.WarnContext(ctx, "persisted_state_discarded",
			slog.String("key", key),
			slog.Int("bytes", len(raw)),
			slog.Any("error", err),
		)
		var zero T
		return zero, nil
	}

	return value, nil
}

// SaveJSON encodes value and stores it under key.
func SaveJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: encode %q: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("kv: set %q: %w", key, err)
	}
	return nil
}
