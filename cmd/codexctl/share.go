// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gamecodex/internal/core/viewstate"
)

var shareKind string

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print the share link of a quest or guide and copy it",
	Long: `Build the link that reopens the entity's detail view and try to copy
it to the clipboard through the terminal. The link is always printed so
it can be copied by hand when the terminal refuses.

Examples:
  codexctl share 1042
  codexctl share --kind=guide warrior-tank-3f2a9c01de`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&shareKind, "kind", kindQuest, "Entity kind: quest or guide")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(shareKind)
	if err != nil {
		return err
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	id := args[0]
	exists := session.quests.Exists
	if kind == kindGuide {
		exists = session.guides.Exists
	}
	if !exists(cmd.Context(), session.deviceID, id) {
		return fmt.Errorf("no %s with id %q", kind, id)
	}

	result := session.syncs[kind].Share(cmd.Context(), id, viewstate.NewTerminalClipboard(os.Stdout), session.logger)

	fmt.Fprintln(cmd.OutOrStdout(), result.URL)
	if result.Copied {
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "not copied: %s\n", result.Reason)
	}
	return nil
}
