package journey

import (
	"fmt"
	"testing"

	"github.com/daviddao/marveljourney/pkg/model"
)

// campaign returns n titles with orders 1..n, phases cycling 0..3.
func campaign(n int) []model.Title {
	out := make([]model.Title, n)
	for i := range out {
		out[i] = model.Title{
			ID:               fmt.Sprintf("t%02d", i+1),
			Name:             fmt.Sprintf("Title %d", i+1),
			Type:             model.TypeFilm,
			Saga:             model.SagaInfinity,
			Phase:            i % 4,
			RecommendedOrder: i + 1,
		}
	}
	return out
}

func watchedUpTo(titles []model.Title, order int) model.WatchState {
	w := model.WatchState{}
	for _, t := range titles {
		if t.RecommendedOrder <= order {
			w[t.ID] = true
		}
	}
	return w
}

func TestCurrentOrder(t *testing.T) {
	titles := campaign(5)
	if got, ok := CurrentOrder(titles, nil); got != 1 || !ok {
		t.Fatalf("fresh = %d/%v", got, ok)
	}
	w := model.WatchState{"t01": true, "t03": true}
	if got, _ := CurrentOrder(titles, w); got != 2 {
		t.Fatalf("gap = %d, want 2", got)
	}
	if got, ok := CurrentOrder(titles, watchedUpTo(titles, 5)); got != 5 || ok {
		t.Fatalf("all watched = %d/%v, want 5/false", got, ok)
	}
	if got, ok := CurrentOrder(nil, nil); got != 0 || ok {
		t.Fatalf("empty = %d/%v", got, ok)
	}
}

func TestClassify_LockedNodeRejected(t *testing.T) {
	titles := campaign(50)
	watch := watchedUpTo(titles, 29)
	current, _ := CurrentOrder(titles, watch)
	if current != 30 {
		t.Fatalf("current = %d, want 30", current)
	}

	target := titles[44] // order 45
	node := Node{Title: target, Status: Classify(target, watch, current)}
	if node.Status != StatusLocked {
		t.Fatalf("status = %s, want locked", node.Status)
	}
	a := Open(node)
	if a.Kind != ActionRejected || a.Route != "" {
		t.Fatalf("locked open = %+v, want rejection without route", a)
	}
	if a.Name != target.Name {
		t.Fatalf("rejection names %q, want %q", a.Name, target.Name)
	}
}

func TestOpen_NavigatesWatchedAndNext(t *testing.T) {
	titles := campaign(3)
	watch := model.WatchState{"t01": true}
	current, _ := CurrentOrder(titles, watch)
	for _, tt := range []struct {
		title model.Title
		want  Status
	}{
		{titles[0], StatusWatched},
		{titles[1], StatusNext},
	} {
		n := Node{Title: tt.title, Status: Classify(tt.title, watch, current)}
		if n.Status != tt.want {
			t.Fatalf("%s status = %s, want %s", tt.title.ID, n.Status, tt.want)
		}
		a := Open(n)
		if a.Kind != ActionNavigate || a.Route != "/title/"+tt.title.ID {
			t.Fatalf("%s open = %+v", tt.title.ID, a)
		}
	}
}

func TestClassify_WatchedAheadStaysWatched(t *testing.T) {
	titles := campaign(5)
	watch := model.WatchState{"t04": true}
	current, _ := CurrentOrder(titles, watch)
	if got := Classify(titles[3], watch, current); got != StatusWatched {
		t.Fatalf("watched out of order = %s", got)
	}
	if got := Classify(titles[2], watch, current); got != StatusLocked {
		t.Fatalf("t03 = %s, want locked", got)
	}
}

func TestGate(t *testing.T) {
	titles := campaign(6)
	watch := model.WatchState{"t01": true, "t03": true}

	gs := Gate(titles, watch, titles[4])
	if gs.Open || gs.Status != StatusLocked {
		t.Fatalf("t05 gate = %+v", gs)
	}
	var blocked []string
	for _, b := range gs.BlockedBy {
		blocked = append(blocked, b.ID)
	}
	if len(blocked) != 2 || blocked[0] != "t02" || blocked[1] != "t04" {
		t.Fatalf("blockedBy = %v, want [t02 t04]", blocked)
	}
	if gs.Next == nil || gs.Next.ID != "t02" {
		t.Fatalf("next = %v", gs.Next)
	}

	if gs := Gate(titles, watch, titles[1]); !gs.Open || gs.Status != StatusNext || len(gs.BlockedBy) != 0 {
		t.Fatalf("t02 gate = %+v", gs)
	}
	if gs := Gate(titles, watch, titles[2]); !gs.Open || gs.Status != StatusWatched {
		t.Fatalf("t03 gate = %+v", gs)
	}
}
