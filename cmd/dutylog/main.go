package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dutylog/internal/cli"
	"github.com/alexanderramin/dutylog/internal/db"
	"github.com/alexanderramin/dutylog/internal/ingest"
	"github.com/alexanderramin/dutylog/internal/platform/config"
	"github.com/alexanderramin/dutylog/internal/platform/metrics"
	"github.com/alexanderramin/dutylog/internal/repository"
	"github.com/alexanderramin/dutylog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()

	// Determine DB path: env var or default ~/.dutylog/dutylog.db
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".dutylog", "dutylog.db")
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := newLogger()

	// Wire repositories and the unit of work for transactional writes.
	entryRepo := repository.NewSQLiteEntryRepo(database)
	blacklistRepo := repository.NewSQLiteBlacklistRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The message source is optional: without credentials the engine serves
	// whatever the store already holds.
	var source ingest.MessageSource
	if cfg.HasSource() {
		source = ingest.NewDiscordSource(cfg.APIBase, cfg.Token, cfg.ChannelID, nil)
	}

	duty := service.NewDutyService(
		entryRepo,
		blacklistRepo,
		uow,
		source,
		cfg.FetchLimit,
		metrics.New(),
		service.NewSlogUseCaseObserver(logger),
	)

	app := &cli.App{Duty: duty, Cfg: cfg, Logger: logger}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger picks a text handler for interactive terminals and JSON
// otherwise, so piped logs stay machine-readable.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
