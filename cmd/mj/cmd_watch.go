package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdWatch(args []string) int   { return a.setWatched("watch", args, true) }
func (a *app) cmdUnwatch(args []string) int { return a.setWatched("unwatch", args, false) }

// setWatched stores an absolute flag for every id given.
func (a *app) setWatched(cmd string, args []string, value bool) int {
	flags := flag.NewFlagSet(cmd, flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: mj %s <id>... [--json]\n", cmd)
		return 1
	}

	ids := make([]string, 0, flags.NArg())
	for _, id := range flags.Args() {
		t, err := a.title(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mj: %s: %v\n", cmd, err)
			return 1
		}
		ids = append(ids, t.ID)
	}

	var err error
	if len(ids) == 1 {
		err = a.watch.Set(ids[0], value)
	} else {
		err = a.watch.MarkAll(ids, value)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ids": ids, "watched": value, "saved": err == nil})
	} else {
		for _, id := range ids {
			t, _ := a.cat.Get(id)
			fmt.Printf("%s %s\n", mark(value), t)
		}
	}
	return saved(cmd, err)
}
