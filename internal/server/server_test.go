package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/geotrack/discovery/internal/audio"
	"github.com/geotrack/discovery/internal/catalog"
	"github.com/geotrack/discovery/internal/database"
	"github.com/geotrack/discovery/internal/migrations"
	"github.com/geotrack/discovery/internal/prefs"
	"github.com/geotrack/discovery/internal/reviews"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDeps wires the full dependency graph against an in-memory
// SQLite database and the static demo catalog.
func newTestDeps(t *testing.T) Deps {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	logger := discardLogger()
	store := prefs.New(ctx, prefs.NewSQLiteKV(db), logger)

	cat := catalog.New()
	if err := cat.Load(ctx, catalog.StaticLoader{}); err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	cat.SetRoutes(catalog.DemoRoutes())

	return Deps{
		DB:      db,
		Catalog: cat,
		Loader:  catalog.StaticLoader{},
		Prefs:   store,
		Reviews: reviews.New(db, store),
		Audio:   audio.NewSession(cat),
	}
}

func emptyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New()
}

func newTestRouter(t *testing.T) (*chi.Mux, Deps) {
	t.Helper()
	deps := newTestDeps(t)

	r := chi.NewRouter()
	addRoutes(r, discardLogger(), deps, "")
	return r, deps
}
