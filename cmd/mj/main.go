// Command mj is the marveljourney CLI: track which titles you have watched
// and walk the recommended order as a strict campaign.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("mj", version)
		return
	case "check":
		// Runs without opening storage so a broken catalogue can be
		// diagnosed.
		os.Exit(cmdCheck(os.Args[2:]))
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Progress
	case "next":
		os.Exit(a.cmdNext(os.Args[2:]))
	case "progress":
		os.Exit(a.cmdProgress(os.Args[2:]))
	case "timeline", "tl":
		os.Exit(a.cmdTimeline(os.Args[2:]))
	case "status":
		os.Exit(a.cmdStatus(os.Args[2:]))

	// Watch state
	case "toggle":
		os.Exit(a.cmdToggle(os.Args[2:]))
	case "watch":
		os.Exit(a.cmdWatch(os.Args[2:]))
	case "unwatch":
		os.Exit(a.cmdUnwatch(os.Args[2:]))
	case "mark":
		os.Exit(a.cmdMark(os.Args[2:]))
	case "reset":
		os.Exit(a.cmdReset(os.Args[2:]))

	// Campaign
	case "journey":
		os.Exit(a.cmdJourney(os.Args[2:]))
	case "open":
		os.Exit(a.cmdOpen(os.Args[2:]))

	// Browse
	case "show":
		os.Exit(a.cmdShow(os.Args[2:]))
	case "universes":
		os.Exit(a.cmdUniverses(os.Args[2:]))
	case "universe":
		os.Exit(a.cmdUniverse(os.Args[2:]))
	case "sagas":
		os.Exit(a.cmdSagas(os.Args[2:]))
	case "saga":
		os.Exit(a.cmdSaga(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "mj: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'mj --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`mj: a strict watch-order journey through the Marvel catalogue

Progress is one JSON map of title id to watched flag, stored locally.
The campaign only lets you open the next unwatched title in order.

Usage:
  mj <command> [flags]

Progress:
  next                          Next title in recommended order
  progress [--by phase|saga|universe]
                                Overall and per-group progress
  timeline [--type T] [--phase P] [--q TEXT]
                                Filtered board grouped by phase
  status                        Storage and hydration details

Watch state:
  toggle <id>                   Flip a title's watched flag
  watch <id> / unwatch <id>     Set a title's watched flag
  mark (--phase N | --saga S | --universe U) [--unwatch]
                                Mark a whole group in one write
  reset --yes                   Clear all progress

Campaign:
  journey [--layout snake|spiral] [--width N] [--lane K] [--svg]
                                Node layout, statuses and path
  open <id>                     Open a level; locked levels are refused

Browse:
  show <id>                     Title details
  universes / universe <slug>   Universes and their titles
  sagas / saga <slug>           Sagas and their titles
  check [pattern...]            Validate a catalogue

Aliases:
  tl = timeline

Environment:
  MARVELJOURNEY_DB         SQLite path, or :memory: (default: .marveljourney/journey.db)
  MARVELJOURNEY_CATALOG    Comma-separated catalogue globs (default: built-in)
  MARVELJOURNEY_LOG_LEVEL  debug, info, warn, error (default: warn)
  MARVELJOURNEY_WIDTH      Board width for the snake layout (default: unknown)

All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  error, including progress that could not be saved
  2  level locked
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mj: "+format+"\n", args...)
	os.Exit(1)
}
