package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spordikava/ingest/internal/config"
	"github.com/spordikava/ingest/internal/observability"
	"github.com/spordikava/ingest/internal/platform/logging"
	"github.com/spordikava/ingest/internal/scraper"
	"github.com/spordikava/ingest/internal/usecase"
)

// Runtime is everything a scrape binary needs after boot. The binaries only
// differ in which adapter(s) they build from it.
type Runtime struct {
	Config  config.Config
	Logger  *logging.Logger
	DB      *sqlx.DB
	Ingest  *usecase.IngestService
	Fetcher *scraper.Fetcher
}

// RunJob boots the process (config, logger, tracing, DB, resolver) then hands
// control to the job body. It owns signal handling, the whole-run timeout and
// teardown order; the return value is the process exit code.
func RunJob(job func(ctx context.Context, rt *Runtime) error) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	db, err := OpenDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	ingest, err := BuildIngest(ctx, db, cfg, logger)
	if err != nil {
		logger.Error("build ingest pipeline", "error", err)
		return 1
	}

	rt := &Runtime{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Ingest:  ingest,
		Fetcher: scraper.NewFetcher(cfg.ScrapeTimeout, cfg.UserAgent, logger),
	}
	if err := job(ctx, rt); err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}
	return 0
}

// RunOne executes a single adapter under the run context.
func (rt *Runtime) RunOne(ctx context.Context, adapter scraper.Adapter) error {
	_, err := rt.Ingest.Run(ctx, adapter)
	return err
}
