// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/guide"
	"github.com/taibuivan/gamecodex/internal/core/ledger"
	"github.com/taibuivan/gamecodex/internal/core/quest"
	"github.com/taibuivan/gamecodex/internal/core/viewstate"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/internal/platform/sqlite"
)

var (
	// storeFlag is the SQLite device store path.
	storeFlag string

	// deviceFlag names the device whose state is read and written.
	deviceFlag string

	// dataFlag is the directory holding the base catalog files.
	dataFlag string

	// originFlag is the page origin used in share links.
	originFlag string

	// verboseFlag enables debug logging on stderr.
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "codexctl",
	Short: "Browse the game catalog from the terminal",
	Long: `codexctl walks quest chains, lists facets, pins entries and moves
user-authored guides in and out of a local device store.

Examples:
  codexctl chain "The Lost Relic"
  codexctl facets quests
  codexctl pin 1042
  codexctl export --format=yaml > guides.yaml
  codexctl import guides.yaml
  codexctl share 1042`,
	Version:       constants.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "./data/codexctl.db", "SQLite device store path")
	rootCmd.PersistentFlags().StringVar(&deviceFlag, "device", "local", "Device identifier")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "./data/gamedata", "Directory with Quests.json, Guides.json and Items.json")
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "http://localhost:3000", "Page origin used in share links")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// Entity kinds accepted by --kind and the facets argument.
const (
	kindQuest = "quest"
	kindGuide = "guide"
)

// parseKind accepts singular and plural spellings.
func parseKind(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "quest", "quests":
		return kindQuest, nil
	case "guide", "guides":
		return kindGuide, nil
	}
	return "", fmt.Errorf("unknown kind %q (want quests or guides)", value)
}

// session bundles the services one command invocation needs.
type session struct {
	deviceID string
	logger   *slog.Logger
	store    *catalog.Store
	ledgers  *ledger.Service
	quests   *quest.Service
	guides   *guide.Service
	syncs    map[string]*viewstate.Synchronizer
	db       *sql.DB
}

// openSession loads the catalog and opens the device store named by the flags.
func openSession(cmd *cobra.Command) (*session, error) {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "codexctl"))

	deviceID := strings.TrimSpace(deviceFlag)
	if deviceID == "" {
		return nil, fmt.Errorf("--device must not be empty")
	}

	db, err := sqlite.Open(cmd.Context(), storeFlag, logger)
	if err != nil {
		return nil, err
	}

	devices := kv.NewSQLiteStore(db)
	store := catalog.Load(dataFlag, logger)
	ledgers := ledger.NewService(devices, logger)

	questSync := viewstate.New(viewstate.QuestParam, originFlag, "/quests")
	guideSync := viewstate.New(viewstate.GuideParam, originFlag, "/guides")

	return &session{
		deviceID: deviceID,
		logger:   logger,
		store:    store,
		ledgers:  ledgers,
		quests:   quest.NewService(store, ledgers, questSync, logger),
		guides:   guide.NewService(store, devices, ledgers, guideSync, logger),
		syncs:    map[string]*viewstate.Synchronizer{kindQuest: questSync, kindGuide: guideSync},
		db:       db,
	}, nil
}

// Close releases the device store.
func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("sqlite close error", slog.Any("error", err))
	}
}
