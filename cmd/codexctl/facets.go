// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gamecodex/internal/core/facet"
)

var facetsCmd = &cobra.Command{
	Use:   "facets <quests|guides>",
	Short: "List facet values with entity counts",
	Long: `Print every facet of a collection with its distinct values and the
number of entities carrying each value. Guide facets include the
device's own guides.

Examples:
  codexctl facets quests
  codexctl facets guides --device=laptop`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"quests", "guides"},
	RunE:      runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	var facets map[string][]facet.Choice
	if kind == kindQuest {
		facets = session.quests.Facets()
	} else {
		facets, err = session.guides.Facets(cmd.Context(), session.deviceID)
		if err != nil {
			return err
		}
	}

	names := make([]string, 0, len(facets))
	for name := range facets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%s:\n", name)
		for _, choice := range facets[name] {
			fmt.Fprintf(out, "  %s (%d)\n", choice.Value, choice.Count)
		}
	}
	return nil
}
