// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gamecodex/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Frost Mage Leveling", "frost-mage-leveling"},
		{"accents", "Épée du Héros", "epee-du-heros"},
		{"punctuation", "  Rogue -- PvP!!  ", "rogue-pvp"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "frost", slug.Truncate("Frost Mage", 6))
	assert.Equal(t, "frost-mage", slug.Truncate("Frost Mage", 40))
}
