package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daviddao/marveljourney/pkg/catalog"
	"github.com/daviddao/marveljourney/pkg/logging"
	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/store"
	"github.com/daviddao/marveljourney/pkg/watch"
)

const (
	defaultDir = ".marveljourney"
	defaultDB  = defaultDir + "/journey.db"
	memoryDB   = ":memory:"
)

// app holds shared state for all CLI subcommands.
type app struct {
	db     *store.Store // nil for :memory: sessions
	dbPath string
	kv     store.KV
	cat    *catalog.Catalog
	watch  *watch.Store
	log    *zap.Logger
	width  float64 // snake board width, 0 when unknown
}

// newApp builds the logger, loads the catalogue, opens storage and
// hydrates the watch store. Creates .marveljourney/ when using the default
// path.
func newApp() (*app, error) {
	log, err := logging.New(envOr("MARVELJOURNEY_LOG_LEVEL", "warn"), zapcore.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("cannot build logger: %w", err)
	}

	cat, err := loadCatalog(envOr("MARVELJOURNEY_CATALOG", ""))
	if err != nil {
		return nil, err
	}

	width, err := parseWidth(envOr("MARVELJOURNEY_WIDTH", ""))
	if err != nil {
		return nil, err
	}

	a := &app{cat: cat, log: log, width: width}
	a.dbPath = envOr("MARVELJOURNEY_DB", defaultDB)
	if a.dbPath == memoryDB {
		a.kv = &store.Memory{}
	} else {
		if a.dbPath == defaultDB {
			if err := os.MkdirAll(defaultDir, 0755); err != nil {
				return nil, fmt.Errorf("cannot create %s: %w", defaultDir, err)
			}
		} else if dir := filepath.Dir(a.dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("cannot create %s: %w", dir, err)
			}
		}
		db, err := store.New(a.dbPath)
		if err != nil {
			return nil, fmt.Errorf("cannot open database %q: %w", a.dbPath, err)
		}
		a.db, a.kv = db, db
	}

	a.watch = watch.New(a.kv, watch.WithLogger(log.Named("watch")))
	a.watch.Hydrate()
	log.Debug("app ready",
		zap.String("db", a.dbPath),
		zap.Int("titles", cat.Len()),
		zap.Int("watched", a.watch.Snapshot().State.Count()))
	return a, nil
}

// Close releases the database connection and flushes the logger.
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.log.Sync()
}

// loadCatalog returns the built-in catalogue when patterns is empty,
// otherwise the catalogue read from the comma-separated globs.
func loadCatalog(patterns string) (*catalog.Catalog, error) {
	if strings.TrimSpace(patterns) == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in catalogue: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.Load(strings.Split(patterns, ",")...)
	if err != nil {
		return nil, fmt.Errorf("catalogue %q: %w", patterns, err)
	}
	return cat, nil
}

func parseWidth(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("MARVELJOURNEY_WIDTH: want a non-negative number, got %q", s)
	}
	return w, nil
}

// state returns the current watch snapshot.
func (a *app) state() model.WatchState { return a.watch.Snapshot().State }

// title resolves id against the catalogue.
func (a *app) title(id string) (model.Title, error) {
	t, ok := a.cat.Get(id)
	if !ok {
		return model.Title{}, fmt.Errorf("unknown title %q", id)
	}
	return t, nil
}

// saved reports a mutation result. A failed write still changed the
// session state, so the user is told progress was not saved.
func saved(cmd string, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, watch.ErrNotPersisted) {
		fmt.Fprintf(os.Stderr, "mj: %s: warning: progress not saved: %v\n", cmd, err)
	} else {
		fmt.Fprintf(os.Stderr, "mj: %s: %v\n", cmd, err)
	}
	return 1
}

// mark returns the glyph used for a watched flag in text output.
func mark(watched bool) string {
	if watched {
		return "[x]"
	}
	return "[ ]"
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
