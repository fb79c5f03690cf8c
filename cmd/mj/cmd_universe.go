package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdUniverses(args []string) int {
	flags := flag.NewFlagSet("universes", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cards := view.Universes(a.cat.Titles(), a.state(), view.PrimaryUniverse)
	if *jsonOut {
		printJSON(cards)
		return 0
	}
	for _, c := range cards {
		fmt.Printf("  %-24s %3d title(s)  %3d%%  %s\n", c.Universe, c.Count, c.Percent, c.Slug)
	}
	return 0
}

func (a *app) cmdUniverse(args []string) int {
	flags := flag.NewFlagSet("universe", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mj universe <slug> [--json]")
		return 1
	}

	name := model.UniverseFromSlug(flags.Arg(0))
	members := view.InUniverse(a.cat.Titles(), name)
	if len(members) == 0 {
		fmt.Fprintf(os.Stderr, "mj: universe: no titles in %q\n", name)
		return 1
	}
	return a.printLane(name, members, *jsonOut)
}

// printLane lists members with their watched flags and lane progress.
func (a *app) printLane(label string, members []model.Title, jsonOut bool) int {
	state := a.state()
	prog := view.ProgressOf(members, state)
	next, hasNext := view.NextUnwatched(members, state)

	if jsonOut {
		result := map[string]interface{}{"name": label, "titles": members, "progress": prog}
		if hasNext {
			result["next"] = next
		}
		printJSON(result)
		return 0
	}

	fmt.Printf("%s  %d/%d watched (%d%%)\n", label, prog.Done, prog.Total, prog.Percent)
	for _, t := range members {
		fmt.Printf("  %s %3d  %s\n", mark(state.Watched(t.ID)), t.RecommendedOrder, t.Name)
	}
	return 0
}
