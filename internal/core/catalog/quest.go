// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// # Quest Classification

// Badge is the list-view marker of a quest.
type Badge string

const (
	BadgeChain   Badge = "chain"
	BadgeFaction Badge = "faction"
	BadgeClass   Badge = "class"
	BadgeGold    Badge = "gold"
	BadgeExp     Badge = "experience"
	BadgePlain   Badge = "plain"
)

// Rarity is the colour tier of a quest in the list view.
type Rarity string

const (
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityHighLevel Rarity = "high_level"
	RarityChain     Rarity = "chain"
	RarityNormal    Rarity = "normal"
)

// Classes splits the space-delimited class requirement into tokens.
func (q Quest) Classes() []string {
	return strings.Fields(q.RequiredClass)
}

// Faction returns the trimmed faction requirement.
func (q Quest) Faction() string {
	return strings.TrimSpace(q.RequiredClassFaction)
}

// Giver returns the trimmed quest-giver name.
func (q Quest) Giver() string {
	return strings.TrimSpace(q.NpcQuestGiver)
}

// Prerequisite returns the trimmed name of the required previous quest.
func (q Quest) Prerequisite() string {
	return strings.TrimSpace(q.RequiredQuest)
}

// IsChain reports whether the quest requires a previous quest.
func (q Quest) IsChain() bool {
	return q.Prerequisite() != ""
}

// Badge classifies the quest; the first matching rule wins.
func (q Quest) Badge() Badge {
	switch {
	case q.IsChain():
		return BadgeChain
	case q.Faction() != "":
		return BadgeFaction
	case len(q.Classes()) > 0:
		return BadgeClass
	case q.Gold > 1000:
		return BadgeGold
	case q.Experience > 10000:
		return BadgeExp
	}
	return BadgePlain
}

// Rarity ranks the quest by rewards and level; the first matching rule wins.
func (q Quest) Rarity() Rarity {
	switch {
	case q.Experience > 50000:
		return RarityEpic
	case q.Gold > 5000:
		return RarityLegendary
	case q.Level >= 100:
		return RarityHighLevel
	case q.IsChain():
		return RarityChain
	}
	return RarityNormal
}
