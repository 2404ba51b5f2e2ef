package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/geotrack/discovery/internal/audio"
	"github.com/geotrack/discovery/internal/catalog"
	"github.com/geotrack/discovery/internal/config"
	"github.com/geotrack/discovery/internal/database"
	"github.com/geotrack/discovery/internal/migrations"
	"github.com/geotrack/discovery/internal/prefs"
	"github.com/geotrack/discovery/internal/reviews"
	"github.com/geotrack/discovery/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Preferences ---
	store := prefs.New(ctx, prefs.NewSQLiteKV(db), logger)

	// --- Catalog ---
	// A failed load is not fatal: the service starts with an empty
	// catalog and a reload can recover it.
	cat := catalog.New()
	loader := catalog.StaticLoader{}
	if err := cat.Load(ctx, loader); err != nil {
		logger.Warn("loading catalog failed, starting empty", "error", err)
	} else {
		logger.Info("catalog loaded", "places", cat.Len())
	}
	cat.SetRoutes(catalog.DemoRoutes())

	// --- Reviews ---
	agg := reviews.New(db, store)
	if err := server.SeedDemoReviews(ctx, agg); err != nil {
		return fmt.Errorf("seeding demo reviews: %w", err)
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		DB:      db,
		Catalog: cat,
		Loader:  loader,
		Prefs:   store,
		Reviews: agg,
		Audio:   audio.NewSession(cat),
	}, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
