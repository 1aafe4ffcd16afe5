// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package preference stores the small set of per-device UI toggles.
package preference

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/internal/platform/validate"
)

// Known preference names and their defaults.
var defaults = map[string]bool{
	"hide_chain_quests":     false,
	"hide_completed_quests": false,
	"show_dialogue":         true,
	"show_outdated_guides":  true,
}

// Names lists the known preferences in lexical order.
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Service reads and writes preferences through the device store.
type Service struct {
	store  kv.Store
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(store kv.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
All returns every known preference of a device.

Description: Absent or unreadable values fall back to their defaults.
*/
func (service *Service) All(context context.Context, deviceID string) (map[string]bool, error) {
	device := kv.Scoped(service.store, deviceID)

	values := make(map[string]bool, len(defaults))
	for _, name := range Names() {
		stored, err := kv.LoadJSON[*bool](context, device, constants.KeyPrefixPreference+name, service.logger)
		if err != nil {
			return nil, err
		}
		values[name] = defaults[name]
		if stored != nil {
			values[name] = *stored
		}
	}
	return values, nil
}

// Set stores one preference. Unknown names are rejected.
func (service *Service) Set(context context.Context, deviceID string, name string, value bool) error {
	validator := &validate.Validator{}
	validator.OneOf("name", name, Names()...)
	if err := validator.Err(); err != nil {
		return err
	}

	return kv.SaveJSON(context, kv.Scoped(service.store, deviceID), constants.KeyPrefixPreference+name, value)
}
