package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/marveljourney/pkg/journey"
	"github.com/daviddao/marveljourney/pkg/model"
)

func (a *app) cmdShow(args []string) int {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mj show <id> [--json]")
		return 1
	}

	t, err := a.title(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: show: %v\n", err)
		return 1
	}

	state := a.state()
	gate := journey.Gate(a.cat.Titles(), state, t)
	lane := journey.LaneOf(t)
	trailer := ""
	if t.TrailerURL != "" {
		trailer = model.EmbedTrailerURL(t.TrailerURL)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"title":   t,
			"watched": state.Watched(t.ID),
			"status":  gate.Status,
			"lane":    lane,
			"route":   model.TitleRoute(t.ID),
			"trailer": trailer,
		})
		return 0
	}

	fmt.Printf("%s %s\n", mark(state.Watched(t.ID)), t)
	fmt.Printf("  type:     %s\n", t.Type)
	fmt.Printf("  saga:     %s\n", t.Saga)
	fmt.Printf("  phase:    %s (%s)\n", model.PhaseLabel(t.Phase), lane.Label)
	fmt.Printf("  universe: %s\n", t.Universe)
	if t.Year > 0 {
		fmt.Printf("  year:     %d\n", t.Year)
	}
	fmt.Printf("  campaign: %s\n", gate.Status)
	if t.Synopsis != "" {
		fmt.Printf("\n  %s\n", t.Synopsis)
	}
	if trailer != "" {
		fmt.Printf("  trailer:  %s\n", trailer)
	}
	for _, l := range t.WatchLinks {
		fmt.Printf("  watch:    %s %s\n", l.Label, l.URL)
	}
	return 0
}
