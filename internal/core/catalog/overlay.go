// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/internal/platform/validate"
	"github.com/taibuivan/gamecodex/pkg/uuidv7"
)

// # Overlay Field Limits

const (
	FieldTitle          = "title"
	FieldAuthor         = "author"
	FieldCharacterClass = "characterClass"
	FieldBuildType      = "buildType"

	maxTitleLength = 200
	maxShortField  = 80
)

// # Overlay

// Overlay is the user-authored guide collection of one device. It is stored
// under its own key and merged with the base guides for every derived view.
type Overlay struct {
	store  kv.Store
	logger *slog.Logger
}

// NewOverlay binds an overlay to a device-scoped store.
func NewOverlay(store kv.Store, logger *slog.Logger) *Overlay {
	return &Overlay{store: store, logger: logger}
}

/*
List returns the overlay guides in insertion order.

Returns:
  - []Guide: Overlay entries (never nil)
  - error: Backend I/O failures only; corrupt state reads as empty
*/
func (overlay *Overlay) List(ctx context.Context) ([]Guide, error) {
	guides, err := kv.LoadJSON[[]Guide](ctx, overlay.store, constants.KeyOverlayGuides, overlay.logger)
	if err != nil {
		return nil, err
	}
	if guides == nil {
		return []Guide{}, nil
	}
	for i := range guides {
		guides[i].UserContent = true
	}
	return guides, nil
}

// Get looks up an overlay guide by id.
func (overlay *Overlay) Get(ctx context.Context, id ID) (Guide, bool, error) {
	guides, err := overlay.List(ctx)
	if err != nil {
		return Guide{}, false, err
	}
	index := slices.IndexFunc(guides, func(g Guide) bool { return g.ID == id })
	if index < 0 {
		return Guide{}, false, nil
	}
	return guides[index], true, nil
}

/*
Append adds a user-authored guide.

Description: The guide receives a fresh UUID v7 identifier regardless of any id
it carries and is marked as user content.

Returns:
  - Guide: The stored guide
  - error: apperr.ValidationError for invalid fields, or backend failures
*/
func (overlay *Overlay) Append(ctx context.Context, guide Guide) (Guide, error) {
	added, err := overlay.AppendAll(ctx, []Guide{guide})
	if err != nil {
		return Guide{}, err
	}
	return added[0], nil
}

// AppendAll adds guides in order with a single write. Every guide is validated
// before anything is stored.
func (overlay *Overlay) AppendAll(ctx context.Context, guides []Guide) ([]Guide, error) {
	for _, guide := range guides {
		if err := ValidateGuide(guide); err != nil {
			return nil, err
		}
	}

	current, err := overlay.List(ctx)
	if err != nil {
		return nil, err
	}

	added := make([]Guide, 0, len(guides))
	for _, guide := range guides {
		guide = normalizeGuide(guide)
		guide.ID = ID(uuidv7.New())
		guide.UserContent = true
		added = append(added, guide)
	}

	if err := overlay.save(ctx, append(current, added...)); err != nil {
		return nil, err
	}

	overlay.logger.InfoContext(ctx, "overlay_guides_appended", slog.Int("count", len(added)))
	return added, nil
}

/*
Update replaces the overlay guide with the given id, keeping its id and marker.

Returns:
  - Guide: The updated guide
  - error: apperr.NotFound if id is not in the overlay
*/
func (overlay *Overlay) Update(ctx context.Context, id ID, guide Guide) (Guide, error) {
	if err := ValidateGuide(guide); err != nil {
		return Guide{}, err
	}

	current, err := overlay.List(ctx)
	if err != nil {
		return Guide{}, err
	}

	index := slices.IndexFunc(current, func(g Guide) bool { return g.ID == id })
	if index < 0 {
		return Guide{}, apperr.NotFound("Guide")
	}

	guide = normalizeGuide(guide)
	guide.ID = id
	guide.UserContent = true
	current[index] = guide

	if err := overlay.save(ctx, current); err != nil {
		return Guide{}, err
	}
	return guide, nil
}

// Delete removes the overlay guide with the given id.
func (overlay *Overlay) Delete(ctx context.Context, id ID) error {
	current, err := overlay.List(ctx)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(current, func(g Guide) bool { return g.ID == id })
	if len(remaining) == len(current) {
		// DeleteFunc shrinks in place; equal lengths means nothing matched.
		return apperr.NotFound("Guide")
	}
	return overlay.save(ctx, remaining)
}

func (overlay *Overlay) save(ctx context.Context, guides []Guide) error {
	return kv.SaveJSON(ctx, overlay.store, constants.KeyOverlayGuides, guides)
}

// # Validation

// ValidateGuide checks the fields a user-authored guide must carry.
func ValidateGuide(guide Guide) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, strings.TrimSpace(guide.Title)).MaxLen(FieldTitle, guide.Title, maxTitleLength)
	validator.MaxLen(FieldAuthor, guide.Author, maxShortField)
	validator.MaxLen(FieldCharacterClass, guide.CharacterClass, maxShortField)
	validator.MaxLen(FieldBuildType, guide.BuildType, maxShortField)
	return validator.Err()
}

func normalizeGuide(guide Guide) Guide {
	guide.Title = strings.TrimSpace(guide.Title)
	guide.Author = strings.TrimSpace(guide.Author)
	guide.CharacterClass = strings.TrimSpace(guide.CharacterClass)
	guide.BuildType = strings.TrimSpace(guide.BuildType)
	return guide
}
