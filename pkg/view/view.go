// Package view derives view-ready aggregates from the catalogue and a watch
// state snapshot.
//
// Every function here is pure: inputs are never mutated and the result
// depends only on the arguments. Callers that cache results should key them
// by watch.Snapshot version.
package view

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daviddao/marveljourney/pkg/model"
)

// Progress is a done/total pair with a rounded percentage.
type Progress struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Percent returns round(done/total*100), or 0 when total is not positive.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// ProgressOf counts the titles marked watched.
func ProgressOf(titles []model.Title, watch model.WatchState) Progress {
	done := 0
	for _, t := range titles {
		if watch.Watched(t.ID) {
			done++
		}
	}
	return Progress{Done: done, Total: len(titles), Percent: Percent(done, len(titles))}
}

// NextUnwatched returns the unwatched title with the smallest
// RecommendedOrder. Input order does not matter; on equal orders the
// earlier entry wins. ok is false for an empty or fully watched list.
func NextUnwatched(titles []model.Title, watch model.WatchState) (next model.Title, ok bool) {
	for _, t := range titles {
		if watch.Watched(t.ID) {
			continue
		}
		if !ok || t.RecommendedOrder < next.RecommendedOrder {
			next, ok = t, true
		}
	}
	return next, ok
}

// SortByOrder returns a copy of titles sorted by RecommendedOrder. The sort
// is stable, so ties keep their input order.
func SortByOrder(titles []model.Title) []model.Title {
	out := make([]model.Title, len(titles))
	copy(out, titles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendedOrder < out[j].RecommendedOrder
	})
	return out
}

// Grouping describes how GroupBy partitions and orders titles.
type Grouping struct {
	Name string
	// Key maps a title to its group. Titles with no natural key must map to
	// a designated bucket rather than "".
	Key func(model.Title) string
	// Label renders a key for display. Nil means the key is its own label.
	Label func(key string) string
	// Less orders group keys. Nil, or keys it considers equal, fall back to
	// the smallest RecommendedOrder among each group's members.
	Less func(a, b string) bool
}

// UnsortedKey is the phase-grouping key for titles without a phase.
const UnsortedKey = "0"

// ByPhase groups by phase number ascending, with unsorted titles first.
var ByPhase = Grouping{
	Name: "phase",
	Key: func(t model.Title) string {
		if t.Unsorted() {
			return UnsortedKey
		}
		return strconv.Itoa(t.Phase)
	},
	Label: func(key string) string {
		n, _ := strconv.Atoi(key)
		return model.PhaseLabel(n)
	},
	Less: func(a, b string) bool {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)
		return x < y
	},
}

// BySaga groups in narrative saga order.
var BySaga = Grouping{
	Name:  "saga",
	Key:   func(t model.Title) string { return string(t.Saga) },
	Label: func(key string) string { return key + " Saga" },
	Less: func(a, b string) bool {
		return sagaRank(a) < sagaRank(b)
	},
}

func sagaRank(key string) int {
	for i, s := range model.Sagas {
		if string(s) == key {
			return i
		}
	}
	return len(model.Sagas)
}

// PrimaryUniverse is the universe listed first on the multiverse index.
const PrimaryUniverse = "Earth-616"

// ByUniverse groups by universe name. Universes starting with primary sort
// first; the rest follow in English collation order.
func ByUniverse(primary string) Grouping {
	return Grouping{
		Name: "universe",
		Key: func(t model.Title) string {
			if t.Universe == "" {
				return "Unknown"
			}
			return t.Universe
		},
		Less: universeLess(primary),
	}
}

func universeLess(primary string) func(a, b string) bool {
	var mu sync.Mutex
	col := collate.New(language.English)
	return func(a, b string) bool {
		pa := primary != "" && strings.HasPrefix(a, primary)
		pb := primary != "" && strings.HasPrefix(b, primary)
		if pa != pb {
			return pa
		}
		// Collator buffers are not safe for concurrent use.
		mu.Lock()
		defer mu.Unlock()
		return col.CompareString(a, b) < 0
	}
}

// Group is one partition produced by GroupBy, with its progress stats.
type Group struct {
	Key       string        `json:"key"`
	Label     string        `json:"label"`
	Members   []model.Title `json:"members"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
	Percent   int           `json:"percent"`
	// Next is the first unwatched member, nil when the group is complete.
	Next     *model.Title `json:"next,omitempty"`
	Complete bool         `json:"complete"`
}

// Progress returns the group's stats as a Progress value.
func (g Group) Progress() Progress {
	return Progress{Done: g.Completed, Total: g.Total, Percent: g.Percent}
}

// GroupBy partitions titles by g.Key. Members are sorted by
// RecommendedOrder and every title lands in exactly one group. Groups are
// never empty, so an empty input yields no groups.
func GroupBy(titles []model.Title, g Grouping, watch model.WatchState) []Group {
	buckets := make(map[string][]model.Title)
	var keys []string
	for _, t := range titles {
		k := g.Key(t)
		if _, seen := buckets[k]; !seen {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], t)
	}

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		members := SortByOrder(buckets[k])
		label := k
		if g.Label != nil {
			label = g.Label(k)
		}
		groups = append(groups, newGroup(k, label, members, watch))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if g.Less != nil {
			if g.Less(a.Key, b.Key) {
				return true
			}
			if g.Less(b.Key, a.Key) {
				return false
			}
		}
		return a.Members[0].RecommendedOrder < b.Members[0].RecommendedOrder
	})
	return groups
}

func newGroup(key, label string, members []model.Title, watch model.WatchState) Group {
	p := ProgressOf(members, watch)
	grp := Group{
		Key:       key,
		Label:     label,
		Members:   members,
		Completed: p.Done,
		Total:     p.Total,
		Percent:   p.Percent,
		Complete:  p.Total > 0 && p.Done >= p.Total,
	}
	for i := range members {
		if !watch.Watched(members[i].ID) {
			next := members[i]
			grp.Next = &next
			break
		}
	}
	return grp
}
