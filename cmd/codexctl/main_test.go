// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questsFixture = `[
  {"Id": 1, "Name": "Rats in the Cellar", "Level": 2, "NpcQuestGiver": "Marta"},
  {"Id": 2, "Name": "The Rat King", "Level": 6, "NpcQuestGiver": "Marta", "RequiredQuest": "Rats in the Cellar"}
]`

const importFixture = `guides:
  - title: Imported Rogue
    characterClass: Rogue
  - title: ""
`

// execute runs codexctl against a fresh data directory and store.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{
		"--data", dir,
		"--store", filepath.Join(dir, "device.db"),
		"--device", "test",
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func newDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Quests.json"), []byte(questsFixture), 0o600))
	return dir
}

func TestChainCommand(t *testing.T) {
	dir := newDataDir(t)

	out, err := execute(t, dir, "chain", "The", "Rat", "King")
	require.NoError(t, err)
	assert.Contains(t, out, "The Rat King")
	assert.Contains(t, out, "Rats in the Cellar")

	_, err = execute(t, dir, "chain", "Nobody")
	assert.Error(t, err)
}

func TestPinCommandTogglesAndPersists(t *testing.T) {
	dir := newDataDir(t)

	out, err := execute(t, dir, "pin", "--kind", "quest", "2")
	require.NoError(t, err)
	assert.Equal(t, "quest 2 pinned\n", out)

	out, err = execute(t, dir, "pin", "--kind", "quest", "2")
	require.NoError(t, err)
	assert.Equal(t, "quest 2 unpinned\n", out)

	_, err = execute(t, dir, "pin", "--kind", "quest", "404")
	assert.Error(t, err)
}

func TestImportThenExport(t *testing.T) {
	dir := newDataDir(t)
	file := filepath.Join(dir, "shared.yaml")
	require.NoError(t, os.WriteFile(file, []byte(importFixture), 0o600))

	out, err := execute(t, dir, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 guide(s)")
	assert.Contains(t, out, "Imported Rogue")
	assert.Contains(t, out, "- #1")

	out, err = execute(t, dir, "export", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Imported Rogue"`)
	assert.Contains(t, out, `"userContent": true`)
}

func TestShareCommandPrintsURL(t *testing.T) {
	dir := newDataDir(t)

	out, err := execute(t, dir, "share", "--kind", "quest", "1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/quests?quest=1\n", out)
}

func TestFacetsCommand(t *testing.T) {
	dir := newDataDir(t)

	out, err := execute(t, dir, "facets", "quests")
	require.NoError(t, err)
	assert.Contains(t, out, "npc:\n  Marta (2)\n")
}
