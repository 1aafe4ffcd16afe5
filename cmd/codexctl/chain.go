// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain <quest name>",
	Short: "Print the prerequisite chain of a quest",
	Long: `Print the named quest followed by its prerequisite, that quest's
prerequisite, and so on. The walk stops at a missing reference and
never prints more than 20 quests.

Examples:
  codexctl chain "The Lost Relic"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChain,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func runChain(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	name := strings.Join(args, " ")
	chain := session.quests.ChainByName(name)
	if len(chain) == 0 {
		return fmt.Errorf("no quest named %q", name)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tID\tNAME\tLEVEL\tGIVER")
	for position, quest := range chain {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%d\t%s\n", position+1, quest.ID, quest.Name, quest.Level, quest.Giver())
	}
	return writer.Flush()
}
