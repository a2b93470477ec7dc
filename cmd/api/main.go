// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Artistly HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from .env and environment variables.
//  3. Load the artist and submission fixtures.
//  4. Choose the draft store (Redis when REDIS_URL is set, memory otherwise).
//  5. Wire services, API handlers and pages.
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

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/onboard"
	"github.com/taibuivan/artistly/internal/core/reference"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/fixture"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
	"github.com/taibuivan/artistly/internal/web"
)

// draftSweepInterval is how often the in-memory draft store drops expired drafts.
const draftSweepInterval = 10 * time.Minute

func main() {
	// 1. Logger
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Artistly] service_initializing")

	// 2. Configuration
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis_drafts", cfg.UsesRedis()),
	)

	// Root context for background workers; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// 3. Fixtures
	source := fixture.New(cfg.FixtureDir)

	artistRepository, err := artist.LoadRepository(source)
	must(log, err, "load artist fixture")
	submissionRepository, err := submission.LoadRepository(source)
	must(log, err, "load submission fixture")

	log.Info("fixtures_loaded", slog.String("source", source.Origin()))

	// 4. Draft store
	health := api.HealthDependencies{
		CheckFixtures: func() error {
			_, err := fixture.Load[artist.Artist](source, fixture.ArtistsFile)
			return err
		},
	}

	var drafts onboard.DraftStore
	if cfg.UsesRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		drafts = onboard.NewRedisStore(rdb, cfg.DraftTTL)
		health.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		memory := onboard.NewMemoryStore(cfg.DraftTTL, nil)
		go memory.Run(rootCtx, draftSweepInterval)
		drafts = memory
	}

	// 5. Domain Wiring
	submitDelay := cfg.SubmitDelay
	if submitDelay == 0 {
		submitDelay = -1 // explicit zero disables the simulated latency
	}

	catalogues, err := reference.NewService()
	must(log, err, "build reference catalogues")

	artistService := artist.NewService(artistRepository, log)
	submissionService := submission.NewService(submissionRepository, log, nil)
	wizard := onboard.NewService(drafts, log, onboard.Options{SubmitDelay: submitDelay})

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Artists:     artist.NewHandler(artistService),
		Submissions: submission.NewHandler(submissionService),
		Onboard:     onboard.NewHandler(wizard),
		Reference:   reference.NewHandler(catalogues),
		Pages: web.NewHandler(web.Services{
			Artists:     artistService,
			Submissions: submissionService,
			Wizard:      wizard,
			Reference:   catalogues,
		}, cfg.IsProduction()).Routes(),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// 6. Graceful Shutdown
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

	// Submissions whose callers already disconnected still finish.
	drainCtx, drainCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer drainCancel()
	if err := wizard.Wait(drainCtx); err != nil {
		log.Error("pending submissions abandoned", slog.Any("error", err))
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
