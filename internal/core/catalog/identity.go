// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/taibuivan/gamecodex/pkg/slug"
)

// derivedHashLength is the number of hex characters of the name digest kept in a derived id.
const derivedHashLength = 10

// maxSlugLength bounds the readable prefix of a derived id.
const maxSlugLength = 48

/*
DeriveID computes the identifier of a record that has none in the source.

Description: The id is a pure function of name and author, so re-deriving it
in another session yields the same value. The slug keeps ids readable in
shared links; the digest separates records whose names slug identically.

Parameters:
  - name: string (Quest name or guide title)
  - author: string (Guide author, empty for quests)

Returns:
  - ID: "<slug>-<10 hex chars>"
*/
func DeriveID(name, author string) ID {
	sum := sha256.Sum256([]byte(name + "\x00" + author))
	digest := hex.EncodeToString(sum[:])[:derivedHashLength]

	prefix := slug.Truncate(name, maxSlugLength)
	if prefix == "" {
		return ID(digest)
	}
	return ID(prefix + "-" + digest)
}

// assignIDs fills missing ids and drops records whose id repeats an earlier one.
func assignIDs[T any](kind Kind, records []T, logger *slog.Logger, access func(*T) (*ID, string, string)) []T {
	seen := make(map[ID]struct{}, len(records))
	result := make([]T, 0, len(records))

	for i := range records {
		record := records[i]
		id, name, author := access(&record)
		if *id == "" {
			*id = DeriveID(name, author)
		}

		if _, duplicate := seen[*id]; duplicate {
			logger.Warn("catalog_duplicate_id_dropped",
				slog.String("kind", string(kind)),
				slog.String("id", string(*id)),
				slog.String("name", name),
			)
			continue
		}
		seen[*id] = struct{}{}
		result = append(result, record)
	}
	return result
}

func questIdentity(q *Quest) (*ID, string, string) { return &q.ID, q.Name, "" }
func guideIdentity(g *Guide) (*ID, string, string) { return &g.ID, g.Title, g.Author }
func itemIdentity(i *Item) (*ID, string, string)   { return &i.ID, i.Name, "" }
