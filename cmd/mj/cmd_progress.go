package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdProgress(args []string) int {
	flags := flag.NewFlagSet("progress", flag.ContinueOnError)
	by := flags.String("by", "phase", "grouping: phase, saga or universe")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	g, err := grouping(*by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: progress: %v\n", err)
		return 1
	}

	titles := a.cat.Titles()
	state := a.state()
	overall := view.ProgressOf(titles, state)
	groups := view.GroupBy(titles, g, state)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"overall":  overall,
			"grouping": g.Name,
			"groups":   groups,
		})
		return 0
	}

	fmt.Printf("overall: %d/%d watched (%d%%)\n", overall.Done, overall.Total, overall.Percent)
	for _, grp := range groups {
		status := ""
		switch {
		case grp.Complete:
			status = "completed"
		case grp.Next != nil:
			status = "next: " + grp.Next.Name
		}
		fmt.Printf("  %-22s %3d/%-3d %3d%%  %s\n", grp.Label, grp.Completed, grp.Total, grp.Percent, status)
	}
	return 0
}

func grouping(name string) (view.Grouping, error) {
	switch name {
	case "phase", "":
		return view.ByPhase, nil
	case "saga":
		return view.BySaga, nil
	case "universe":
		return view.ByUniverse(view.PrimaryUniverse), nil
	}
	return view.Grouping{}, fmt.Errorf("unknown grouping %q (want phase, saga or universe)", name)
}
