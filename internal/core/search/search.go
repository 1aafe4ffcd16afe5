// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search implements the header's global search across items, quests and
guides.

Matching is fuzzy: a substring match scores 1000 minus its position, otherwise
every query character must appear in order, scoring 10 for a character that
directly follows the previous match and 5 for one that does not.
*/
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
)

// MaxResults caps the number of hits returned by [Search].
const MaxResults = 50

const (
	substringBase    = 1000
	consecutiveBonus = 10
	inOrderBonus     = 5
)

// Hit is one search result.
type Hit struct {
	Kind     catalog.Kind `json:"kind"`
	ID       catalog.ID   `json:"id"`
	Name     string       `json:"name"`
	Subtitle string       `json:"subtitle,omitempty"`
	Score    int          `json:"score"`
}

// Score matches query against text ignoring case. ok is false when the query
// characters do not all appear in order.
func Score(text, query string) (score int, ok bool) {
	if text == "" || query == "" {
		return 0, false
	}

	text = strings.ToLower(text)
	query = strings.ToLower(query)

	if index := strings.Index(text, query); index >= 0 {
		return substringBase - len([]rune(text[:index])), true
	}

	textRunes := []rune(text)
	queryRunes := []rune(query)
	matched, last := 0, -1

	for i := 0; i < len(textRunes) && matched < len(queryRunes); i++ {
		if textRunes[i] != queryRunes[matched] {
			continue
		}
		if i == last+1 {
			score += consecutiveBonus
		} else {
			score += inOrderBonus
		}
		last = i
		matched++
	}

	if matched < len(queryRunes) {
		return 0, false
	}
	return score, true
}

// Corpus is the set of collections searched by [Search].
type Corpus struct {
	Items  []catalog.Item
	Quests []catalog.Quest
	Guides []catalog.Guide
}

/*
Search scores every entity of corpus against query.

Description: Items are matched by name, quests by name, guides by the better
of title and category. Hits are ordered by descending score; ties keep corpus
order (items, quests, guides). A blank query returns no hits.

Returns:
  - []Hit: At most [MaxResults] hits, never nil
*/
func Search(corpus Corpus, query string) []Hit {
	hits := []Hit{}
	query = strings.TrimSpace(query)
	if query == "" {
		return hits
	}

	for _, item := range corpus.Items {
		if score, ok := Score(item.Name, query); ok {
			hits = append(hits, Hit{Kind: catalog.KindItem, ID: item.ID, Name: item.Name, Subtitle: fallback(item.Type, "Item"), Score: score})
		}
	}

	for _, quest := range corpus.Quests {
		if score, ok := Score(quest.Name, query); ok {
			hits = append(hits, Hit{Kind: catalog.KindQuest, ID: quest.ID, Name: quest.Name, Subtitle: fallback(quest.Zone, "Quest"), Score: score})
		}
	}

	for _, guide := range corpus.Guides {
		titleScore, titleOK := Score(guide.Title, query)
		categoryScore, categoryOK := Score(guide.Category, query)
		if titleOK || categoryOK {
			hits = append(hits, Hit{Kind: catalog.KindGuide, ID: guide.ID, Name: guide.Title, Subtitle: guide.Category, Score: max(titleScore, categoryScore)})
		}
	}

	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	return hits
}

func fallback(value, otherwise string) string {
	if strings.TrimSpace(value) == "" {
		return otherwise
	}
	return value
}
