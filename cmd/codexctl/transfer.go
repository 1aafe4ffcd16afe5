// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
)

var (
	exportFormat string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the device's own guides to stdout",
	Long: `Export the user-authored guides of this device as a document that
import accepts.

Examples:
  codexctl export > guides.json
  codexctl export --format=yaml > guides.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append guides from a JSON or YAML document",
	Long: `Import guides into this device's overlay. Every entry receives a new
id. Invalid entries are skipped and reported; a malformed document
changes nothing. The format follows the file extension unless --format
is given.

Examples:
  codexctl import guides.json
  codexctl import --format=yaml shared.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(catalog.FormatJSON), "Output format (json, yaml)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format (json, yaml); inferred from the extension when empty")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := catalog.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	body, err := session.guides.Export(cmd.Context(), session.deviceID, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(body)
	return err
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	name := importFormat
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	format, err := catalog.ParseFormat(name)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := session.guides.Import(cmd.Context(), session.deviceID, raw, format)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil {
			for _, detail := range appErr.Details {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", detail.Field, detail.Message)
			}
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "imported %d guide(s)\n", len(result.Added))
	for _, added := range result.Added {
		fmt.Fprintf(out, "  + %s %s\n", added.ID, added.Title)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "  - #%d %q: %s\n", skipped.Index, skipped.Title, skipped.Reason)
	}
	return nil
}
