package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdToggle(args []string) int {
	flags := flag.NewFlagSet("toggle", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mj toggle <id> [--json]")
		return 1
	}

	t, err := a.title(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: toggle: %v\n", err)
		return 1
	}

	// The in-memory flip stands even when the write fails.
	now, err := a.watch.Toggle(t.ID)
	if *jsonOut {
		printJSON(map[string]interface{}{"id": t.ID, "watched": now, "saved": err == nil})
	} else {
		fmt.Printf("%s %s\n", mark(now), t)
	}
	return saved("toggle", err)
}
