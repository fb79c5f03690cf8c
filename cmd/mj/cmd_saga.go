package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdSagas(args []string) int {
	flags := flag.NewFlagSet("sagas", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cards := view.Sagas(a.cat.Titles(), a.state())
	if *jsonOut {
		printJSON(cards)
		return 0
	}
	for _, c := range cards {
		next := "completed"
		if c.Next != nil {
			next = "next: " + c.Next.Name
		}
		fmt.Printf("  %-18s %3d/%-3d %3d%%  %-12s %s\n", c.Label, c.Done, c.Total, c.Percent, c.Slug, next)
	}
	return 0
}

func (a *app) cmdSaga(args []string) int {
	flags := flag.NewFlagSet("saga", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mj saga <slug> [--json]")
		return 1
	}

	sg, ok := model.SagaFromSlug(flags.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "mj: saga: unknown saga %q\n", flags.Arg(0))
		return 1
	}
	return a.printLane(string(sg)+" Saga", view.InSaga(a.cat.Titles(), sg), *jsonOut)
}
