// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pinKind     string
	completeCmd = &cobra.Command{
		Use:   "complete <quest id>",
		Short: "Toggle the completed mark of a quest",
		Args:  cobra.ExactArgs(1),
		RunE:  runComplete,
	}
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle the pin of a quest or guide",
	Long: `Pin or unpin an entity on this device. Pinned entities are listed
first on every page. Running the command twice restores the original state.

Examples:
  codexctl pin 1042
  codexctl pin --kind=guide warrior-tank-3f2a9c01de`,
	Args: cobra.ExactArgs(1),
	RunE: runPin,
}

func init() {
	pinCmd.Flags().StringVar(&pinKind, "kind", kindQuest, "Entity kind: quest or guide")
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(completeCmd)
}

func runPin(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(pinKind)
	if err != nil {
		return err
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	id := args[0]
	var pinned bool
	if kind == kindQuest {
		pinned, err = session.quests.TogglePin(cmd.Context(), session.deviceID, id)
	} else {
		pinned, err = session.guides.TogglePin(cmd.Context(), session.deviceID, id)
	}
	if err != nil {
		return err
	}

	state := "unpinned"
	if pinned {
		state = "pinned"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", kind, id, state)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	id := args[0]
	completed, err := session.quests.ToggleCompletion(cmd.Context(), session.deviceID, id)
	if err != nil {
		return err
	}

	state := "open"
	if completed {
		state = "completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "quest %s %s\n", id, state)
	return nil
}
