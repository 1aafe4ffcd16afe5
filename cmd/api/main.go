// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Gamecodex HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the device store selected by STORE_BACKEND (memory, redis, postgres, sqlite).
//  4. Load the base catalog (quests, guides, items) from DATA_DIR.
//  5. Wire the ledger, view-state and catalog handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/gamecodex/internal/api"
	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/guide"
	"github.com/taibuivan/gamecodex/internal/core/ledger"
	"github.com/taibuivan/gamecodex/internal/core/preference"
	"github.com/taibuivan/gamecodex/internal/core/quest"
	"github.com/taibuivan/gamecodex/internal/core/search"
	"github.com/taibuivan/gamecodex/internal/core/viewstate"
	"github.com/taibuivan/gamecodex/internal/platform/config"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/kv"
	"github.com/taibuivan/gamecodex/internal/platform/migration"
	pgstore "github.com/taibuivan/gamecodex/internal/platform/postgres"
	redisstore "github.com/taibuivan/gamecodex/internal/platform/redis"
	"github.com/taibuivan/gamecodex/internal/platform/sqlite"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "gamecodex"))
	slog.SetDefault(log)

	log.Info("[Gamecodex] service_initializing",
		slog.String("service", constants.AppName),
		slog.String("version", constants.AppVersion),
	)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "gamecodex"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_backend", cfg.StoreBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Device store ───────────────────────────────────────────────────
	devices, checks, closeStore := openDeviceStore(startupCtx, cfg, log)
	defer closeStore()

	// ── 4. Base catalog ───────────────────────────────────────────────────
	store := catalog.Load(cfg.DataDir, log)

	// ── 5. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Checks: checks,
		Catalog: func() map[string]int {
			counts := make(map[string]int)
			for kind, count := range store.Counts() {
				counts[string(kind)] = count
			}
			return counts
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	ledgers := ledger.NewService(devices, log)

	questSync := viewstate.New(viewstate.QuestParam, cfg.PublicOrigin, "/quests")
	guideSync := viewstate.New(viewstate.GuideParam, cfg.PublicOrigin, "/guides")

	questService := quest.NewService(store, ledgers, questSync, log)
	guideService := guide.NewService(store, devices, ledgers, guideSync, log)
	preferenceService := preference.NewService(devices, log)

	viewStateHandler := viewstate.NewHandler(map[string]viewstate.Page{
		"quests": {Sync: questSync, Exists: questService.Exists},
		"guides": {Sync: guideSync, Exists: guideService.Exists},
	})

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Quest:      quest.NewHandler(questService, cfg.PageSize),
		Guide:      guide.NewHandler(guideService, cfg.PageSize),
		ViewState:  viewStateHandler,
		Preference: preference.NewHandler(preferenceService),
		Search:     search.NewHandler(store, guideService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// openDeviceStore connects the backend chosen by STORE_BACKEND.
//
// Returns:
//   - kv.Store: the device store shared by ledgers, overlay and preferences
//   - []api.HealthCheck: readiness probes for the backend (empty for memory)
//   - func(): releases the connection on shutdown
func openDeviceStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (kv.Store, []api.HealthCheck, func()) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")

		checks := []api.HealthCheck{{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		}}
		return kv.NewRedisStore(rdb), checks, func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}

	case config.BackendPostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")

		checks := []api.HealthCheck{{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		}}
		return kv.NewPostgresStore(pool), checks, func() {
			log.Info("closing postgres pool")
			pool.Close()
		}

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		must(log, err, "open sqlite")

		checks := []api.HealthCheck{{
			Name:  "sqlite",
			Check: db.PingContext,
		}}
		return kv.NewSQLiteStore(db), checks, func() {
			log.Info("closing sqlite database")
			if cerr := db.Close(); cerr != nil {
				log.Error("sqlite close error", slog.Any("error", cerr))
			}
		}

	default:
		log.Warn("device_store_in_memory", slog.String("hint", "pins and overlays are lost on restart"))
		return kv.NewMemoryStore(), nil, func() {}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
