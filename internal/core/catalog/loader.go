// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// # Data Files

// Base names of the data files inside the data directory. Each may be stored
// as .json, .yaml or .yml; the first existing extension wins.
const (
	QuestsFile = "Quests"
	GuidesFile = "Guides"
	ItemsFile  = "Items"
)

var dataExtensions = []string{".json", ".yaml", ".yml"}

// errNoDataFile is returned when none of the data file variants exist.
var errNoDataFile = errors.New("catalog: data file not found")

/*
Load reads the base catalogue from dir.

Description: Each collection loads independently. A collection whose file is
missing or malformed degrades to an empty collection with an error log, so
one broken file never hides the others.

Parameters:
  - dir: string (Directory containing Quests, Guides and Items files)
  - logger: *slog.Logger

Returns:
  - *Store: The base catalogue, possibly with empty collections
*/
func Load(dir string, logger *slog.Logger) *Store {
	var quests []Quest
	if err := readDataFile(dir, QuestsFile, &quests); err != nil {
		logCollectionFailure(logger, KindQuest, err)
		quests = nil
	}

	var guides guideDocument
	if err := readDataFile(dir, GuidesFile, &guides); err != nil {
		logCollectionFailure(logger, KindGuide, err)
		guides.Guides = nil
	}

	var items []Item
	if err := readDataFile(dir, ItemsFile, &items); err != nil {
		logCollectionFailure(logger, KindItem, err)
		items = nil
	}

	store := NewStore(quests, guides.Guides, items, logger)

	counts := store.Counts()
	logger.Info("catalog_loaded",
		slog.String("dir", dir),
		slog.Int("quests", counts[KindQuest]),
		slog.Int("guides", counts[KindGuide]),
		slog.Int("items", counts[KindItem]),
	)

	return store
}

// readDataFile decodes the first existing variant of base in dir into target.
func readDataFile(dir, base string, target any) error {
	for _, ext := range dataExtensions {
		path := filepath.Join(dir, base+ext)
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := decodeDocument(raw, formatFromExtension(ext), target); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", errNoDataFile, filepath.Join(dir, base))
}

func logCollectionFailure(logger *slog.Logger, kind Kind, err error) {
	logger.Error("catalog_collection_unavailable",
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
}

// decodeDocument unmarshals raw according to format.
func decodeDocument(raw []byte, format Format, target any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(raw, target)
	default:
		return json.Unmarshal(raw, target)
	}
}

func formatFromExtension(ext string) Format {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}
