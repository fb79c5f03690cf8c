package journey

import (
	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

// Lane is one stretch of the campaign, keyed by phase.
type Lane struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	Backdrop string `json:"backdrop"`
	Phase    int    `json:"phase"`
}

// Lanes in campaign order. The prologue holds titles without a phase.
var Lanes = []Lane{
	{Key: "prologue", Label: "Prologue", Subtitle: "The essentials before the saga locks in.", Backdrop: "/posters/blade-1998.jpg", Phase: 0},
	{Key: "phase1", Label: "Phase 1", Subtitle: "The origin spark.", Backdrop: "/posters/the-avengers-2012.jpg", Phase: 1},
	{Key: "phase2", Label: "Phase 2", Subtitle: "The world expands.", Backdrop: "/posters/avengers-age-of-ultron-2015.jpg", Phase: 2},
	{Key: "phase3", Label: "Phase 3", Subtitle: "The endgame pressure.", Backdrop: "/posters/avengers-endgame-2019.jpg", Phase: 3},
	{Key: "phase4", Label: "Phase 4", Subtitle: "Cracks in reality.", Backdrop: "/posters/spider-man-no-way-home-2021.jpg", Phase: 4},
	{Key: "phase5", Label: "Phase 5", Subtitle: "Variants. Consequences.", Backdrop: "/posters/deadpool-and-wolverine-2024.jpg", Phase: 5},
	{Key: "phase6", Label: "Phase 6", Subtitle: "The road to collision.", Backdrop: "/posters/fantastic-four-2025.jpg", Phase: 6},
}

// LaneOf returns the lane t belongs to. Phases without a lane fall back to
// the prologue.
func LaneOf(t model.Title) Lane {
	if t.Unsorted() {
		return Lanes[0]
	}
	for _, l := range Lanes {
		if l.Phase == t.Phase {
			return l
		}
	}
	return Lanes[0]
}

// LaneByKey looks up a lane by its key.
func LaneByKey(key string) (Lane, bool) {
	for _, l := range Lanes {
		if l.Key == key {
			return l, true
		}
	}
	return Lane{}, false
}

// Board is the snake campaign over the whole catalogue.
type Board struct {
	Layout Layout `json:"layout"`
	Nodes  []Node `json:"nodes"`
	// Cleared is the length of the watched prefix, i.e. the index of the
	// next level. Titles watched out of order do not count.
	Cleared int          `json:"cleared"`
	Total   int          `json:"total"`
	Percent int          `json:"percent"`
	Next    *model.Title `json:"next,omitempty"`
	// Active is the lane of the next level, the last lane once cleared.
	Active Lane `json:"active"`
}

// PathData returns the SVG path for the board.
func (b Board) PathData() string { return b.Layout.Path.String() }

// Campaign lays the full catalogue out as one snake sized for width.
func Campaign(titles []model.Title, watch model.WatchState, width float64, p SnakeParams) (Board, error) {
	if err := p.Validate(); err != nil {
		return Board{}, err
	}
	ordered := view.SortByOrder(titles)
	l, err := Snake(len(ordered), p.Columns(width), p)
	if err != nil {
		return Board{}, err
	}

	cleared := len(ordered)
	for i, t := range ordered {
		if !watch.Watched(t.ID) {
			cleared = i
			break
		}
	}
	current, _ := CurrentOrder(ordered, watch)

	b := Board{
		Layout:  l,
		Nodes:   Nodes(ordered, l, watch, current),
		Cleared: cleared,
		Total:   len(ordered),
		Percent: view.Percent(cleared, len(ordered)),
		Active:  Lanes[len(Lanes)-1],
	}
	if cleared < len(ordered) {
		next := ordered[cleared]
		b.Next = &next
		b.Active = LaneOf(next)
	}
	return b, nil
}

// LaneMap is one lane drawn as a spiral.
type LaneMap struct {
	Lane     Lane          `json:"lane"`
	Layout   Layout        `json:"layout"`
	Nodes    []Node        `json:"nodes"`
	Progress view.Progress `json:"progress"`
	Ring     Ring          `json:"ring"`
}

// PathData returns the SVG path for the lane.
func (m LaneMap) PathData() string { return m.Layout.Path.String() }

// Atlas is the spiral journey map: one LaneMap per non-empty lane plus the
// overall progress.
type Atlas struct {
	Lanes    []LaneMap     `json:"lanes"`
	Progress view.Progress `json:"progress"`
	// Current is the order of the next title, or of the last title when
	// everything is watched.
	Current int `json:"current"`
}

// Map builds a spiral for every lane that has titles. Classification uses
// the global current order, so at most one node across all lanes is next.
func Map(titles []model.Title, watch model.WatchState, p SpiralParams) (Atlas, error) {
	ordered := view.SortByOrder(titles)
	current, _ := CurrentOrder(ordered, watch)
	atlas := Atlas{Progress: view.ProgressOf(ordered, watch), Current: current}

	for _, lane := range Lanes {
		var members []model.Title
		for _, t := range ordered {
			if LaneOf(t).Key == lane.Key {
				members = append(members, t)
			}
		}
		if len(members) == 0 {
			continue
		}
		l, err := Spiral(len(members), p)
		if err != nil {
			return Atlas{}, err
		}
		prog := view.ProgressOf(members, watch)
		atlas.Lanes = append(atlas.Lanes, LaneMap{
			Lane:     lane,
			Layout:   l,
			Nodes:    Nodes(members, l, watch, current),
			Progress: prog,
			Ring:     NewRing(p.RingR, float64(prog.Done)/float64(prog.Total)),
		})
	}
	return atlas, nil
}

// Find returns the node for id, if the board has one.
func (b Board) Find(id string) (Node, bool) {
	for _, n := range b.Nodes {
		if n.Title.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
