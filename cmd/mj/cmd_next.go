package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/marveljourney/pkg/journey"
	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdNext(args []string) int {
	flags := flag.NewFlagSet("next", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	titles := a.cat.Titles()
	state := a.state()
	next, ok := view.NextUnwatched(titles, state)
	prog := view.ProgressOf(titles, state)

	if *jsonOut {
		result := map[string]interface{}{"done": !ok, "progress": prog}
		if ok {
			result["next"] = next
			result["route"] = model.TitleRoute(next.ID)
			result["lane"] = journey.LaneOf(next)
		}
		printJSON(result)
		return 0
	}

	if !ok {
		fmt.Println("You're caught up. Legend behavior.")
		return 0
	}
	lane := journey.LaneOf(next)
	fmt.Printf("next: %s\n", next)
	fmt.Printf("  lane:  %s, %s\n", lane.Label, lane.Subtitle)
	fmt.Printf("  open:  %s\n", model.TitleRoute(next.ID))
	fmt.Printf("  %d/%d watched (%d%%)\n", prog.Done, prog.Total, prog.Percent)
	return 0
}
