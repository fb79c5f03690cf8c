package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/daviddao/marveljourney/pkg/watch"
)

func (a *app) cmdStatus(args []string) int {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	keys, err := a.kv.Keys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: status: %v\n", err)
		return 1
	}

	// Only the SQLite store tracks write times.
	var updated time.Time
	if a.db != nil {
		if ts, ok, err := a.db.UpdatedAt(watch.DefaultKey); err == nil && ok {
			updated = ts
		}
	}

	snap := a.watch.Snapshot()
	if *jsonOut {
		result := map[string]interface{}{
			"db":       a.dbPath,
			"key":      watch.DefaultKey,
			"keys":     keys,
			"hydrated": a.watch.Hydrated(),
			"version":  snap.Version,
			"watched":  snap.State.Count(),
			"titles":   a.cat.Len(),
		}
		if !updated.IsZero() {
			result["updated_at"] = updated
		}
		printJSON(result)
		return 0
	}

	fmt.Printf("db:       %s\n", a.dbPath)
	fmt.Printf("key:      %s\n", watch.DefaultKey)
	fmt.Printf("keys:     %d\n", len(keys))
	fmt.Printf("hydrated: %v\n", a.watch.Hydrated())
	fmt.Printf("watched:  %d/%d\n", snap.State.Count(), a.cat.Len())
	if !updated.IsZero() {
		fmt.Printf("saved:    %s\n", updated.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("saved:    never")
	}
	return 0
}
