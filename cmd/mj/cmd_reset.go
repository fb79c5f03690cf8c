package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdReset(args []string) int {
	flags := flag.NewFlagSet("reset", flag.ContinueOnError)
	yes := flags.Bool("yes", false, "confirm clearing all progress")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if !*yes {
		fmt.Fprintln(os.Stderr, "mj: reset clears all progress; pass --yes to confirm")
		return 1
	}

	before := a.state().Count()
	err := a.watch.Reset()
	if *jsonOut {
		printJSON(map[string]interface{}{"cleared": before, "saved": err == nil})
	} else {
		fmt.Printf("cleared %d watched title(s)\n", before)
	}
	return saved("reset", err)
}
