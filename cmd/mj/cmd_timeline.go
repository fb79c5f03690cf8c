package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdTimeline(args []string) int {
	flags := flag.NewFlagSet("timeline", flag.ContinueOnError)
	typ := flags.String("type", view.All, "title type: film, show, oneShot, special, short or all")
	phase := flags.String("phase", view.All, "phase number, unsorted or all")
	q := flags.String("q", "", "case-insensitive name search")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	f := view.Filter{Type: *typ, Phase: *phase, Query: *q}
	board := view.Timeline(a.cat.Titles(), a.state(), f)

	if *jsonOut {
		printJSON(board)
		return 0
	}

	if board.Empty() {
		fmt.Println("No titles match.")
		return 0
	}

	next := "All caught up. You're worthy."
	if board.Next != nil {
		next = board.Next.Name
	}
	fmt.Printf("NEXT UP: %s\n", next)
	fmt.Printf("%d/%d watched (%d%%)\n", board.Done, board.Total, board.Percent)

	state := a.state()
	for _, g := range board.Groups {
		fmt.Printf("\n%s  %d/%d completed (%d%%)", g.Label, g.Completed, g.Total, g.Percent)
		if g.Complete {
			fmt.Print("  COMPLETED")
		}
		fmt.Println()
		for _, t := range g.Members {
			fmt.Printf("  %s %3d  %-45s %s\n", mark(state.Watched(t.ID)), t.RecommendedOrder, t.Name, t.ID)
		}
	}
	return 0
}
