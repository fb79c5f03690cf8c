package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

func (a *app) cmdMark(args []string) int {
	flags := flag.NewFlagSet("mark", flag.ContinueOnError)
	phase := flags.String("phase", "", "phase number or unsorted")
	saga := flags.String("saga", "", "saga name or slug")
	universe := flags.String("universe", "", "universe name or slug")
	unwatch := flags.Bool("unwatch", false, "clear instead of mark")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	set := 0
	for _, v := range []string{*phase, *saga, *universe} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		fmt.Fprintln(os.Stderr, "usage: mj mark (--phase N | --saga S | --universe U) [--unwatch] [--json]")
		return 1
	}

	titles := a.cat.Titles()
	var (
		members []model.Title
		label   string
	)
	switch {
	case *phase != "":
		members = view.FilterTitles(titles, view.Filter{Phase: *phase})
		n, _ := strconv.Atoi(*phase)
		label = model.PhaseLabel(n)
	case *saga != "":
		sg, ok := model.SagaFromSlug(*saga)
		if !ok {
			fmt.Fprintf(os.Stderr, "mj: mark: unknown saga %q\n", *saga)
			return 1
		}
		members = view.InSaga(titles, sg)
		label = string(sg) + " Saga"
	default:
		label = model.UniverseFromSlug(*universe)
		members = view.InUniverse(titles, label)
	}
	if len(members) == 0 {
		fmt.Fprintf(os.Stderr, "mj: mark: no titles in %s\n", label)
		return 1
	}

	ids := make([]string, len(members))
	for i, t := range members {
		ids[i] = t.ID
	}
	value := !*unwatch
	err := a.watch.MarkAll(ids, value)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"group": label, "ids": ids, "watched": value, "saved": err == nil,
			"progress": view.ProgressOf(members, a.state()),
		})
	} else {
		verb := "marked"
		if !value {
			verb = "cleared"
		}
		fmt.Printf("%s %d title(s) in %s\n", verb, len(ids), label)
	}
	return saved("mark", err)
}
