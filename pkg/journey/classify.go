package journey

import (
	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/view"
)

// Status is a node's interaction state.
type Status string

const (
	StatusWatched Status = "watched"
	StatusNext    Status = "next"
	StatusLocked  Status = "locked"
)

// CurrentOrder returns the RecommendedOrder of the first unwatched title in
// the whole catalogue. When everything is watched it falls back to the last
// title's order and ok is false. An empty catalogue returns 0, false.
func CurrentOrder(titles []model.Title, watch model.WatchState) (order int, ok bool) {
	if next, found := view.NextUnwatched(titles, watch); found {
		return next.RecommendedOrder, true
	}
	for _, t := range titles {
		order = max(order, t.RecommendedOrder)
	}
	return order, false
}

// Classify returns the status of t given the global current order.
func Classify(t model.Title, watch model.WatchState, current int) Status {
	switch {
	case watch.Watched(t.ID):
		return StatusWatched
	case t.RecommendedOrder == current:
		return StatusNext
	default:
		return StatusLocked
	}
}

// Node is a placed, classified title.
type Node struct {
	Title  model.Title `json:"title"`
	Slot   Slot        `json:"slot"`
	Size   float64     `json:"size"`
	Status Status      `json:"status"`
}

// Nodes pairs members with the layout slots at the same index and
// classifies each against the global current order.
func Nodes(members []model.Title, l Layout, watch model.WatchState, current int) []Node {
	nodes := make([]Node, len(members))
	for i, t := range members {
		nodes[i] = Node{
			Title:  t,
			Slot:   l.Slots[i],
			Size:   l.NodeSize,
			Status: Classify(t, watch, current),
		}
	}
	return nodes
}

// ActionKind is the outcome of opening a node.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionRejected ActionKind = "rejected"
)

// Action is what opening a node does. A rejected action never carries a
// route.
type Action struct {
	Kind    ActionKind `json:"kind"`
	Route   string     `json:"route,omitempty"`
	TitleID string     `json:"id"`
	// Name is the title the user tried to open, shown in the locked notice.
	Name string `json:"name"`
}

// Open applies the strict-traversal contract: watched and next nodes
// navigate to their detail route, locked nodes are rejected.
func Open(n Node) Action {
	a := Action{TitleID: n.Title.ID, Name: n.Title.Name}
	if n.Status == StatusLocked {
		a.Kind = ActionRejected
		return a
	}
	a.Kind = ActionNavigate
	a.Route = model.TitleRoute(n.Title.ID)
	return a
}

// GateStatus explains whether a title can be opened right now.
type GateStatus struct {
	Status Status `json:"status"`
	Open   bool   `json:"open"`
	// Next is the title the user has to clear next, nil when all watched.
	Next *model.Title `json:"next,omitempty"`
	// BlockedBy lists the unwatched titles ordered before the requested
	// one, in recommended order.
	BlockedBy []model.Title `json:"blockedBy,omitempty"`
}

// Gate checks t against the whole catalogue. A title is open when it is
// watched or when no unwatched title comes before it.
func Gate(titles []model.Title, watch model.WatchState, t model.Title) GateStatus {
	current, _ := CurrentOrder(titles, watch)
	gs := GateStatus{Status: Classify(t, watch, current)}
	gs.Open = gs.Status != StatusLocked
	if next, ok := view.NextUnwatched(titles, watch); ok {
		gs.Next = &next
	}
	if gs.Open {
		return gs
	}
	for _, o := range view.SortByOrder(titles) {
		if o.RecommendedOrder < t.RecommendedOrder && !watch.Watched(o.ID) {
			gs.BlockedBy = append(gs.BlockedBy, o)
		}
	}
	return gs
}
