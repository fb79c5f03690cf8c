package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/daviddao/marveljourney/pkg/catalog"
	"github.com/daviddao/marveljourney/pkg/journey"
	"github.com/daviddao/marveljourney/pkg/view"
)

// cmdCheck validates a catalogue: the given globs, MARVELJOURNEY_CATALOG,
// or the built-in one.
func cmdCheck(args []string) int {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	patterns := strings.Join(flags.Args(), ",")
	if patterns == "" {
		patterns = envOr("MARVELJOURNEY_CATALOG", "")
	}

	cat, err := loadCatalog(patterns)
	if err != nil {
		problems := splitProblems(err)
		if *jsonOut {
			printJSON(map[string]interface{}{"ok": false, "problems": problems})
		} else {
			fmt.Fprintln(os.Stderr, "mj: check: catalogue invalid")
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", p)
			}
		}
		return 1
	}

	titles := cat.Titles()
	lanes := map[string]int{}
	for _, t := range titles {
		lanes[journey.LaneOf(t).Key]++
	}
	groups := view.GroupBy(titles, view.ByPhase, nil)

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "titles": cat.Len(), "lanes": lanes})
		return 0
	}
	fmt.Printf("ok: %d titles\n", cat.Len())
	for _, g := range groups {
		fmt.Printf("  %-10s %d\n", g.Label, g.Total)
	}
	return 0
}

// splitProblems flattens joined validation errors into one line each.
func splitProblems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			if errors.Is(e, catalog.ErrInvalid) {
				continue
			}
			out = append(out, splitProblems(e)...)
		}
		if len(out) > 0 {
			return out
		}
	}
	return []string{err.Error()}
}
