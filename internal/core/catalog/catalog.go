// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the reference-data entities of the Gamecodex viewer.

It holds the immutable base collections (quests, guides, items) loaded once per
process and the per-device overlay of user-authored guides.

Core Responsibility:

  - Catalogue: Quest, Guide and Item records in source (display) order.
  - Identity: Stable ids from source data, derived ids otherwise ([DeriveID]).
  - Overlay: Append, update and delete of user-authored guides, never touching the base.
  - Transfer: Export and re-import of the overlay as JSON or YAML documents.

References between entities are stored as names, not ids. Resolving them is the
job of the resolve package.
*/
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// # Entity Kinds

// Kind names a collection of the catalogue.
type Kind string

const (
	// KindQuest is the quest collection.
	KindQuest Kind = "quest"

	// KindGuide is the build-guide collection (base and overlay).
	KindGuide Kind = "guide"

	// KindItem is the item collection, used only as a cross-link target.
	KindItem Kind = "item"
)

// # Identity

// ID is an entity identifier. Source files carry quest ids as numbers and guide
// ids as strings; both decode into the same textual form.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(text))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if n, err := number.Int64(); err == nil {
		*id = ID(strconv.FormatInt(n, 10))
		return nil
	}
	*id = ID(number.String())
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = ID(strings.TrimSpace(node.Value))
	return nil
}

// # Quest

// Reward is a single reward line of a quest.
type Reward struct {
	Name   string `json:"Name" yaml:"Name"`
	Amount int    `json:"Amount" yaml:"Amount"`
}

// Quest is a quest record. Field names follow the game's Quests.json.
type Quest struct {
	ID                   ID       `json:"Id" yaml:"Id"`
	Name                 string   `json:"Name" yaml:"Name"`
	Description          string   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Zone                 string   `json:"Zone,omitempty" yaml:"Zone,omitempty"`
	Level                int      `json:"Level" yaml:"Level"`
	RequiredLevel        int      `json:"RequiredLevel,omitempty" yaml:"RequiredLevel,omitempty"`
	Experience           int      `json:"Experience" yaml:"Experience"`
	Gold                 int      `json:"Gold" yaml:"Gold"`
	RequiredClass        string   `json:"RequiredClass,omitempty" yaml:"RequiredClass,omitempty"`
	RequiredClassFaction string   `json:"RequiredClassFaction,omitempty" yaml:"RequiredClassFaction,omitempty"`
	NpcQuestGiver        string   `json:"NpcQuestGiver,omitempty" yaml:"NpcQuestGiver,omitempty"`
	RequiredQuest        string   `json:"RequiredQuest,omitempty" yaml:"RequiredQuest,omitempty"`
	Objectives           []string `json:"Objectives,omitempty" yaml:"Objectives,omitempty"`
	Steps                []string `json:"Steps,omitempty" yaml:"Steps,omitempty"`
	Rewards              []Reward `json:"Rewards,omitempty" yaml:"Rewards,omitempty"`
}

// # Guide

// Equipment is one slot of a guide's recommended gear. Name refers to an item by name.
type Equipment struct {
	Slot        string `json:"slot" yaml:"slot"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Section is a titled markdown block of a guide.
type Section struct {
	Title     string      `json:"title" yaml:"title"`
	Content   string      `json:"content,omitempty" yaml:"content,omitempty"`
	Skills    []string    `json:"skills,omitempty" yaml:"skills,omitempty"`
	Spells    []string    `json:"spells,omitempty" yaml:"spells,omitempty"`
	Equipment []Equipment `json:"equipment,omitempty" yaml:"equipment,omitempty"`
}

// Guide is a character build guide.
type Guide struct {
	ID             ID        `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Author         string    `json:"author,omitempty" yaml:"author,omitempty"`
	Contact        string    `json:"contact,omitempty" yaml:"contact,omitempty"`
	CharacterClass string    `json:"characterClass,omitempty" yaml:"characterClass,omitempty"`
	BuildType      string    `json:"buildType,omitempty" yaml:"buildType,omitempty"`
	Category       string    `json:"category,omitempty" yaml:"category,omitempty"`
	Version        string    `json:"version,omitempty" yaml:"version,omitempty"`
	Status         string    `json:"status,omitempty" yaml:"status,omitempty"`
	Sections       []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	UserContent    bool      `json:"userContent,omitempty" yaml:"userContent,omitempty"`
}

// EquipmentNames lists the item names referenced by the guide, in section order.
func (g Guide) EquipmentNames() []string {
	var names []string
	for _, section := range g.Sections {
		for _, equipment := range section.Equipment {
			if name := strings.TrimSpace(equipment.Name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// guideDocument is the top-level shape of Guides.json.
type guideDocument struct {
	Guides []Guide `json:"guides" yaml:"guides"`
}

// # Item

// Item is the subset of an item record needed for cross-linking.
type Item struct {
	ID    ID     `json:"Id" yaml:"Id"`
	Name  string `json:"Name" yaml:"Name"`
	Type  string `json:"Type,omitempty" yaml:"Type,omitempty"`
	Level int    `json:"Level,omitempty" yaml:"Level,omitempty"`
}
