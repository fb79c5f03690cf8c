package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/marveljourney/pkg/journey"
)

// cmdOpen is the campaign click: watched and next levels open, anything
// further ahead is refused with exit code 2.
func (a *app) cmdOpen(args []string) int {
	flags := flag.NewFlagSet("open", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mj open <id> [--json]")
		return 1
	}

	t, err := a.title(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: open: %v\n", err)
		return 1
	}

	titles := a.cat.Titles()
	state := a.state()
	board, err := journey.Campaign(titles, state, a.width, journey.DefaultSnake())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: open: %v\n", err)
		return 1
	}
	node, ok := board.Find(t.ID)
	if !ok {
		fmt.Fprintf(os.Stderr, "mj: open: %s is not on the board\n", t.ID)
		return 1
	}
	action := journey.Open(node)

	if action.Kind == journey.ActionRejected {
		gate := journey.Gate(titles, state, t)
		if *jsonOut {
			printJSON(map[string]interface{}{"action": action, "gate": gate})
		} else {
			fmt.Printf("LOCKED: %s\n", action.Name)
			if gate.Next != nil {
				fmt.Printf("  clear %s first (%d level(s) ahead of this one)\n", gate.Next.Name, len(gate.BlockedBy))
			}
			fmt.Println("  use 'mj timeline' to watch freely")
		}
		return 2
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"action": action, "title": t})
	} else {
		fmt.Printf("%s\n", action.Route)
	}
	return 0
}
