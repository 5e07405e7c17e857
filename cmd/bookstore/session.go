package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/plpbookstore/bookstore"
	"github.com/plpbookstore/bookstore/internal/config"
	"github.com/plpbookstore/bookstore/internal/logging"
	"github.com/plpbookstore/bookstore/internal/report"
)

var globalFlags struct {
	uri      string
	logLevel string
	output   string
	timeout  time.Duration
	envFiles []string
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(globalFlags.envFiles...)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("uri") {
		cfg.URI = globalFlags.uri
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = globalFlags.logLevel
	}
	if flags.Changed("output") {
		cfg.Output = globalFlags.output
	}
	if flags.Changed("timeout") {
		cfg.Timeout = globalFlags.timeout
	}
	return cfg, cfg.Validate()
}

// session is one open connection plus everything a command needs around it.
type session struct {
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
	out     *report.Printer
	store   *bookstore.Store
	catalog *bookstore.Catalog
}

// openSession connects to the database. On success the caller must call
// close exactly once, on every exit path. A failed connect still prints
// "Connection closed". Errors are returned, never logged here; main reports
// them.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogLevel, os.Stderr).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	if cfg.Timeout > 0 {
		cancel()
		ctx, cancel = context.WithTimeout(cmd.Context(), cfg.Timeout)
	}

	out := report.NewPrinter(cmd.OutOrStdout(), report.Format(cfg.Output))
	store, err := bookstore.Connect(ctx, cfg.URI, bookstore.ConnectOptions{AppName: "bookstore"})
	if err != nil {
		cancel()
		// Connect already disconnected the client.
		_ = out.Message("Connection closed")
		return nil, err
	}
	logger.Info("connected", "database", bookstore.DatabaseName, "collection", bookstore.CollectionName)

	catalog := store.Catalog()
	catalog.Use(bookstore.LogOperations(logger))

	return &session{
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		out:     out,
		store:   store,
		catalog: catalog,
	}, nil
}

// close disconnects. Disconnect uses a fresh context so it still runs after
// the command's deadline has passed.
func (s *session) close() {
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.store.Close(ctx); err != nil {
		s.logger.Warn("disconnect failed", "err", err)
	}
	_ = s.out.Message("Connection closed")
	s.logger.Info("connection closed")
}

// seedIfEmpty seeds the sample catalog when the collection is empty.
func (s *session) seedIfEmpty() error {
	seeder := bookstore.SeederFunc(func(ctx context.Context, c *bookstore.Catalog) error {
		_ = s.out.Message("No books found, inserting sample books...")
		return bookstore.SampleSeeder.Seed(ctx, c)
	})
	seeded, err := bookstore.SeedIfEmpty(s.ctx, s.catalog, seeder)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	s.logger.Info("seed check complete", "seeded", seeded)
	return nil
}
