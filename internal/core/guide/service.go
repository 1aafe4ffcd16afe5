// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/facet"
	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/core/ledger"
	"github.com/taibuivan/gamecodex/internal/core/resolve"
	"github.com/taibuivan/gamecodex/internal/core/viewstate"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/pkg/pagination"
	"github.com/taibuivan/gamecodex/pkg/slice"
)

// # Service Layer

// Service orchestrates the guide browser and the user-authored overlay.
type Service struct {
	store   *catalog.Store
	items   *resolve.Index[catalog.Item]
	devices kv.Store
	ledgers *ledger.Service
	sync    *viewstate.Synchronizer
	logger  *slog.Logger
}

// NewService constructs a new [Service]. The item name index is built once.
func NewService(store *catalog.Store, devices kv.Store, ledgers *ledger.Service, sync *viewstate.Synchronizer, logger *slog.Logger) *Service {
	items := resolve.NewIndex(store.Items(), func(i catalog.Item) string { return i.Name }, nil)

	return &Service{
		store:   store,
		items:   items,
		devices: devices,
		ledgers: ledgers,
		sync:    sync,
		logger:  logger,
	}
}

func (service *Service) overlay(deviceID string) *catalog.Overlay {
	return catalog.NewOverlay(kv.Scoped(service.devices, deviceID), service.logger.With(slog.String("device_id", deviceID)))
}

// Merged returns base guides followed by the device overlay. Anonymous callers see the base only.
func (service *Service) Merged(context context.Context, deviceID string) ([]catalog.Guide, error) {
	base := service.store.Guides()
	if deviceID == "" {
		return base, nil
	}

	overlay, err := service.overlay(deviceID).List(context)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(base, overlay), nil
}

func (service *Service) pins(context context.Context, deviceID string) (ledger.Set, error) {
	if deviceID == "" {
		return ledger.NewSet(), nil
	}
	return service.ledgers.Pins(context, deviceID, ledger.KindGuide)
}

func entry(guide catalog.Guide, pins ledger.Set) Entry {
	return Entry{
		Guide:    guide,
		Pinned:   pins.Has(string(guide.ID)),
		Outdated: strings.EqualFold(strings.TrimSpace(guide.Status), statusOutdated),
	}
}

func find(guides []catalog.Guide, id string) (catalog.Guide, bool) {
	for _, guide := range guides {
		if string(guide.ID) == id {
			return guide, true
		}
	}
	return catalog.Guide{}, false
}

func liveIDs(guides []catalog.Guide) ledger.Set {
	return ledger.NewSet(slice.Map(guides, func(g catalog.Guide) string { return string(g.ID) })...)
}

// # Browsing

/*
List filters, orders and pages the merged guides of a device.

Returns:
  - []Entry: The requested page, pinned guides first
  - int: Total number of matching guides
  - error: Device store failures
*/
func (service *Service) List(context context.Context, deviceID string, criteria filter.Criteria, page pagination.Params) ([]Entry, int, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, 0, err
	}
	pins, err := service.pins(context, deviceID)
	if err != nil {
		return nil, 0, err
	}

	ordered := filter.Apply(guides, Schema, criteria, filter.Marks{Pinned: pins})
	window := pagination.Window(ordered, page)

	return slice.Map(window, func(g catalog.Guide) Entry { return entry(g, pins) }), len(ordered), nil
}

// Facets returns the facet choices of the merged collection with counts.
func (service *Service) Facets(context context.Context, deviceID string) (map[string][]facet.Choice, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, err
	}
	return facet.BuildCounts(guides, Facets), nil
}

// Get returns a guide with its resolved equipment links.
func (service *Service) Get(context context.Context, deviceID string, id string) (*Detail, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, err
	}
	guide, ok := find(guides, id)
	if !ok {
		return nil, apperr.NotFound("Guide")
	}

	pins, err := service.pins(context, deviceID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Entry:    entry(guide, pins),
		Links:    service.links(guide),
		ShareURL: service.sync.ShareURL(id),
	}, nil
}

// Links resolves the equipment of a guide against the item catalogue.
func (service *Service) Links(context context.Context, deviceID string, id string) ([]EquipmentLink, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, err
	}
	guide, ok := find(guides, id)
	if !ok {
		return nil, apperr.NotFound("Guide")
	}
	return service.links(guide), nil
}

func (service *Service) links(guide catalog.Guide) []EquipmentLink {
	links := []EquipmentLink{}
	for _, section := range guide.Sections {
		for _, equipment := range section.Equipment {
			if strings.TrimSpace(equipment.Name) == "" {
				continue
			}
			links = append(links, EquipmentLink{
				Section: section.Title,
				Slot:    equipment.Slot,
				Link:    resolve.LinkTo(service.items, equipment.Name, ItemsSearchPath),
			})
		}
	}
	return links
}

// # Device Ledger

// TogglePin flips the pin of a live guide.
func (service *Service) TogglePin(context context.Context, deviceID string, id string) (bool, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return false, err
	}
	if _, ok := find(guides, id); !ok {
		return false, apperr.NotFound("Guide")
	}
	return service.ledgers.TogglePin(context, deviceID, ledger.KindGuide, id)
}

// Reconcile prunes the device's guide pins against the merged collection.
func (service *Service) Reconcile(context context.Context, deviceID string) ([]string, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, err
	}
	return service.ledgers.Reconcile(context, deviceID, ledger.KindGuide, liveIDs(guides))
}

// # Overlay Management

/*
Create appends a user-authored guide to the device overlay.

Returns:
  - catalog.Guide: The stored guide with its fresh id
  - error: Validation or device store failures
*/
func (service *Service) Create(context context.Context, deviceID string, guide catalog.Guide) (catalog.Guide, error) {
	created, err := service.overlay(deviceID).Append(context, guide)
	if err != nil {
		return catalog.Guide{}, err
	}
	if _, err := service.Reconcile(context, deviceID); err != nil {
		return catalog.Guide{}, err
	}
	return created, nil
}

// Update replaces a user-authored guide. Base guides are read-only.
func (service *Service) Update(context context.Context, deviceID string, id string, guide catalog.Guide) (catalog.Guide, error) {
	if service.store.HasGuide(catalog.ID(id)) {
		return catalog.Guide{}, apperr.Forbidden("Catalogue guides cannot be modified")
	}

	updated, err := service.overlay(deviceID).Update(context, catalog.ID(id), guide)
	if err != nil {
		return catalog.Guide{}, err
	}
	if _, err := service.Reconcile(context, deviceID); err != nil {
		return catalog.Guide{}, err
	}
	return updated, nil
}

// Delete removes a user-authored guide and prunes its pin.
func (service *Service) Delete(context context.Context, deviceID string, id string) error {
	if service.store.HasGuide(catalog.ID(id)) {
		return apperr.Forbidden("Catalogue guides cannot be deleted")
	}

	if err := service.overlay(deviceID).Delete(context, catalog.ID(id)); err != nil {
		return err
	}
	_, err := service.Reconcile(context, deviceID)
	return err
}

// # Export / Import

// Export serializes the device overlay.
func (service *Service) Export(context context.Context, deviceID string, format catalog.Format) ([]byte, error) {
	guides, err := service.overlay(deviceID).List(context)
	if err != nil {
		return nil, err
	}
	return catalog.Export(guides, format)
}

// ImportResult is the outcome of an import request.
type ImportResult struct {
	Added   []catalog.Guide        `json:"added"`
	Skipped []catalog.SkippedEntry `json:"skipped"`
}

/*
Import re-ingests an exported document into the device overlay.

Description: Every valid entry is appended with a fresh id and marked as user
content. A malformed document leaves the overlay untouched.

Returns:
  - *ImportResult: Added guides and skipped entries
  - error: apperr.ValidationError for malformed documents, or device store failures
*/
func (service *Service) Import(context context.Context, deviceID string, raw []byte, format catalog.Format) (*ImportResult, error) {
	report, err := catalog.Import(raw, format)
	if err != nil {
		return nil, err
	}

	added, err := service.overlay(deviceID).AppendAll(context, report.Guides)
	if err != nil {
		return nil, err
	}
	if _, err := service.Reconcile(context, deviceID); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "overlay_imported",
		slog.String("device_id", deviceID),
		slog.Int("added", len(added)),
		slog.Int("skipped", len(report.Skipped)),
	)
	return &ImportResult{Added: added, Skipped: report.Skipped}, nil
}

// # View State

// View restores the page state from an address after reconciling the pin ledger.
func (service *Service) View(context context.Context, deviceID string, address string) (*View, error) {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return nil, err
	}
	live := liveIDs(guides)

	if deviceID != "" {
		if _, err := service.ledgers.Reconcile(context, deviceID, ledger.KindGuide, live); err != nil {
			return nil, err
		}
	}

	id, ok := service.sync.Restore(address, live.Has)
	if !ok {
		return &View{Mode: ModeList}, nil
	}

	detail, err := service.Get(context, deviceID, id)
	if err != nil {
		return nil, err
	}
	return &View{Mode: ModeDetail, Detail: detail}, nil
}

// Exists reports whether id belongs to the merged guides of the device.
func (service *Service) Exists(context context.Context, deviceID string, id string) bool {
	guides, err := service.Merged(context, deviceID)
	if err != nil {
		return false
	}
	_, ok := find(guides, id)
	return ok
}
