// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command codexctl browses the catalog from a terminal.
//
// It loads the same base collections as the API server and keeps per-device
// state (pins, completions, the guide overlay) in a local SQLite file, so a
// workstation can act as one device without running the server.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
