package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thiagom05/IceCore/internal/api"
	"github.com/Thiagom05/IceCore/internal/cart"
	"github.com/Thiagom05/IceCore/internal/catalog"
	"github.com/Thiagom05/IceCore/internal/config"
	"github.com/Thiagom05/IceCore/internal/storage"
	"github.com/Thiagom05/IceCore/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	PollEvery  time.Duration // zero polls at the cache TTL
}

// Run boots the storefront TUI until the context is cancelled. The catalog
// is seeded synchronously before the UI starts, so there is never an empty
// screen waiting on the network.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)

	client, err := api.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := storage.Open(cfg.DataDir)

	cache := catalog.NewCache(store, client, cfg.CacheTTL, logger)
	cache.Initialize()
	defer cache.Dispose()

	ledger := cart.NewLedger(store, logger)
	reconciler := cart.NewReconciler(ledger, logger)

	// Every published catalog repairs the cart before anything else sees
	// the new snapshot.
	unsubscribe := cache.Subscribe(func(snap catalog.Snapshot) {
		reconciler.Apply(snap)
	})
	defer unsubscribe()

	interval := opts.PollEvery
	if interval <= 0 {
		interval = cfg.CacheTTL
	}
	StartPoller(ctx, cache, interval, logger)

	return ui.Run(ui.Options{
		Context: ctx,
		Cache:   cache,
		Ledger:  ledger,
		Store:   store,
	})
}

// newLogger builds the application logger. Output goes to a log file under
// the data directory so it never fights the TUI for the terminal; if the
// file cannot be opened, logging is dropped.
func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.SetOutput(io.Discard)
	if err := os.MkdirAll(cfg.DataDir, 0o755); err == nil {
		path := filepath.Join(cfg.DataDir, "icecore.log")
		if file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			logger.SetOutput(file)
		}
	}
	return logger
}
