// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gamecodex/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, convert.ToIntD("7", 0))
	assert.Equal(t, 150, convert.ToIntD("", 150))
	assert.Equal(t, 150, convert.ToIntD("abc", 150))
	assert.Equal(t, 12, convert.ToIntD(" 12 ", 0))
}

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes-please"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, convert.Clamp(-5, 0, 150))
	assert.Equal(t, 150, convert.Clamp(400, 0, 150))
	assert.Equal(t, 42, convert.Clamp(42, 0, 150))
}
