package journey

import (
	"testing"

	"github.com/daviddao/marveljourney/pkg/model"
)

func TestLaneOf(t *testing.T) {
	tests := []struct {
		phase int
		want  string
	}{
		{0, "prologue"},
		{1, "phase1"},
		{6, "phase6"},
		{9, "prologue"},
	}
	for _, tt := range tests {
		if got := LaneOf(model.Title{Phase: tt.phase}).Key; got != tt.want {
			t.Errorf("LaneOf(phase %d) = %s, want %s", tt.phase, got, tt.want)
		}
	}
	if l, ok := LaneByKey("phase3"); !ok || l.Phase != 3 {
		t.Fatalf("LaneByKey(phase3) = %+v, %v", l, ok)
	}
	if _, ok := LaneByKey("phase9"); ok {
		t.Fatal("unknown lane found")
	}
}

func TestCampaign(t *testing.T) {
	titles := campaign(12)
	// Watched out of order: t05 does not extend the cleared prefix.
	watch := model.WatchState{"t01": true, "t02": true, "t05": true}

	b, err := Campaign(titles, watch, 0, DefaultSnake())
	if err != nil {
		t.Fatal(err)
	}
	if b.Layout.Cols != 10 {
		t.Fatalf("cols = %d, want default 10", b.Layout.Cols)
	}
	if b.Cleared != 2 || b.Total != 12 || b.Percent != 17 {
		t.Fatalf("cleared=%d total=%d percent=%d", b.Cleared, b.Total, b.Percent)
	}
	if b.Next == nil || b.Next.ID != "t03" {
		t.Fatalf("next = %v", b.Next)
	}
	// t03 has phase 2.
	if b.Active.Key != "phase2" {
		t.Fatalf("active lane = %s", b.Active.Key)
	}

	counts := map[Status]int{}
	for _, n := range b.Nodes {
		counts[n.Status]++
	}
	if counts[StatusNext] != 1 || counts[StatusWatched] != 3 || counts[StatusLocked] != 8 {
		t.Fatalf("status counts = %v", counts)
	}
	if n, ok := b.Find("t05"); !ok || n.Status != StatusWatched {
		t.Fatalf("t05 = %+v", n)
	}
	if b.PathData() == "" || b.PathData() != b.Layout.D {
		t.Fatal("missing path data")
	}
}

func TestCampaign_AllWatched(t *testing.T) {
	titles := campaign(4)
	b, err := Campaign(titles, watchedUpTo(titles, 4), 800, DefaultSnake())
	if err != nil {
		t.Fatal(err)
	}
	if b.Next != nil || b.Percent != 100 || b.Active.Key != Lanes[len(Lanes)-1].Key {
		t.Fatalf("board = next %v percent %d active %s", b.Next, b.Percent, b.Active.Key)
	}
	for _, n := range b.Nodes {
		if n.Status != StatusWatched {
			t.Fatalf("%s = %s", n.Title.ID, n.Status)
		}
	}
}

func TestCampaign_Empty(t *testing.T) {
	b, err := Campaign(nil, nil, 500, DefaultSnake())
	if err != nil {
		t.Fatal(err)
	}
	if b.Total != 0 || b.Percent != 0 || len(b.Nodes) != 0 {
		t.Fatalf("board = %+v", b)
	}
}

func TestMap_NextIsGlobal(t *testing.T) {
	titles := campaign(12)
	watch := watchedUpTo(titles, 5)

	atlas, err := Map(titles, watch, DefaultSpiral())
	if err != nil {
		t.Fatal(err)
	}
	if len(atlas.Lanes) != 4 {
		t.Fatalf("got %d lanes, want 4", len(atlas.Lanes))
	}
	if atlas.Current != 6 {
		t.Fatalf("current = %d", atlas.Current)
	}

	next := 0
	for _, lm := range atlas.Lanes {
		for _, n := range lm.Nodes {
			if LaneOf(n.Title).Key != lm.Lane.Key {
				t.Fatalf("%s drawn in lane %s", n.Title.ID, lm.Lane.Key)
			}
			if n.Status == StatusNext {
				next++
				if n.Title.RecommendedOrder != 6 {
					t.Fatalf("next node is %s", n.Title.ID)
				}
			}
		}
		if len(lm.Nodes) != len(lm.Layout.Slots) {
			t.Fatalf("lane %s: %d nodes, %d slots", lm.Lane.Key, len(lm.Nodes), len(lm.Layout.Slots))
		}
	}
	if next != 1 {
		t.Fatalf("%d next nodes across lanes, want 1", next)
	}
	if atlas.Progress.Done != 5 || atlas.Progress.Total != 12 {
		t.Fatalf("progress = %+v", atlas.Progress)
	}
}

func TestMap_LaneProgressRing(t *testing.T) {
	titles := campaign(8)
	// Prologue lane holds t01 and t05.
	atlas, err := Map(titles, model.WatchState{"t01": true}, DefaultSpiral())
	if err != nil {
		t.Fatal(err)
	}
	pro := atlas.Lanes[0]
	if pro.Lane.Key != "prologue" || pro.Progress.Percent != 50 {
		t.Fatalf("prologue = %+v", pro.Progress)
	}
	if pro.Ring.Dash*2 != pro.Ring.Circumference {
		t.Fatalf("ring = %+v", pro.Ring)
	}
}
