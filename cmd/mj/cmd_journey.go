package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/daviddao/marveljourney/pkg/journey"
)

func (a *app) cmdJourney(args []string) int {
	flags := flag.NewFlagSet("journey", flag.ContinueOnError)
	layout := flags.String("layout", "snake", "snake (whole campaign) or spiral (one per lane)")
	width := flags.Float64("width", a.width, "available board width for snake columns (0 = unknown)")
	lane := flags.String("lane", "", "spiral only: show a single lane (prologue, phase1..phase6)")
	svg := flags.Bool("svg", false, "print only the SVG path data")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	switch *layout {
	case "snake":
		return a.journeySnake(*width, *svg, *jsonOut)
	case "spiral":
		return a.journeySpiral(*lane, *svg, *jsonOut)
	}
	fmt.Fprintf(os.Stderr, "mj: journey: unknown layout %q (want snake or spiral)\n", *layout)
	return 1
}

func (a *app) journeySnake(width float64, svg, jsonOut bool) int {
	board, err := journey.Campaign(a.cat.Titles(), a.state(), width, journey.DefaultSnake())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: journey: %v\n", err)
		return 1
	}

	switch {
	case jsonOut:
		printJSON(board)
	case svg:
		fmt.Println(board.PathData())
	default:
		fmt.Printf("%s: %s\n", board.Active.Label, board.Active.Subtitle)
		fmt.Printf("cleared %d/%d (%d%%)", board.Cleared, board.Total, board.Percent)
		if board.Next != nil {
			fmt.Printf("  next level: %s", board.Next.Name)
		}
		fmt.Println()
		for _, row := range board.Layout.Rows() {
			cells := make([]string, len(row))
			for i, idx := range row {
				cells[i] = cell(board.Nodes[idx])
			}
			fmt.Println("  " + strings.Join(cells, " "))
		}
	}
	return 0
}

func (a *app) journeySpiral(lane string, svg, jsonOut bool) int {
	if lane != "" {
		if _, ok := journey.LaneByKey(lane); !ok {
			fmt.Fprintf(os.Stderr, "mj: journey: unknown lane %q\n", lane)
			return 1
		}
	}
	atlas, err := journey.Map(a.cat.Titles(), a.state(), journey.DefaultSpiral())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mj: journey: %v\n", err)
		return 1
	}
	if lane != "" {
		var kept []journey.LaneMap
		for _, lm := range atlas.Lanes {
			if lm.Lane.Key == lane {
				kept = append(kept, lm)
			}
		}
		atlas.Lanes = kept
	}

	switch {
	case jsonOut:
		printJSON(atlas)
	case svg:
		for _, lm := range atlas.Lanes {
			fmt.Printf("%s\t%s\n", lm.Lane.Key, lm.PathData())
		}
	default:
		p := atlas.Progress
		fmt.Printf("progress: %d/%d (%d%%)\n", p.Done, p.Total, p.Percent)
		for _, lm := range atlas.Lanes {
			fmt.Printf("\n%s: %s  %d/%d (%d%%)\n", lm.Lane.Label, lm.Lane.Subtitle,
				lm.Progress.Done, lm.Progress.Total, lm.Progress.Percent)
			for _, n := range lm.Nodes {
				fmt.Printf("  %s %3d  %s\n", cell(n), n.Title.RecommendedOrder, n.Title.Name)
			}
		}
	}
	return 0
}

// cell renders a node status as a fixed-width glyph.
func cell(n journey.Node) string {
	switch n.Status {
	case journey.StatusWatched:
		return "[x]"
	case journey.StatusNext:
		return "[>]"
	default:
		return "[.]"
	}
}
