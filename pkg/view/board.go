package view

import (
	"github.com/daviddao/marveljourney/pkg/model"
)

// Board is the filtered, phase-grouped timeline with overall stats.
type Board struct {
	Filter Filter  `json:"filter"`
	Groups []Group `json:"groups"`
	Progress
	// Next is the first group's next-up title, nil when everything shown
	// is watched or nothing matched.
	Next *model.Title `json:"next,omitempty"`
}

// Empty reports that the filter matched nothing.
func (b Board) Empty() bool { return b.Total == 0 }

// Timeline filters titles and groups the result by phase. Overall progress
// counts only the titles that passed the filter.
func Timeline(titles []model.Title, watch model.WatchState, f Filter) Board {
	shown := FilterTitles(titles, f)
	b := Board{
		Filter:   f,
		Groups:   GroupBy(shown, ByPhase, watch),
		Progress: ProgressOf(shown, watch),
	}
	for _, g := range b.Groups {
		if g.Next != nil {
			b.Next = g.Next
			break
		}
	}
	return b
}

// UniverseCard summarises one universe on the multiverse index.
type UniverseCard struct {
	Universe string `json:"universe"`
	Slug     string `json:"slug"`
	Count    int    `json:"count"`
	// Poster is the poster of the member with the smallest RecommendedOrder.
	Poster string `json:"poster,omitempty"`
	Progress
}

// Universes lists one card per universe, primary universe first.
func Universes(titles []model.Title, watch model.WatchState, primary string) []UniverseCard {
	groups := GroupBy(titles, ByUniverse(primary), watch)
	cards := make([]UniverseCard, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, UniverseCard{
			Universe: g.Key,
			Slug:     model.UniverseSlug(g.Key),
			Count:    g.Total,
			Poster:   g.Members[0].PosterSrc,
			Progress: g.Progress(),
		})
	}
	return cards
}

// InUniverse returns the members of universe in recommended order.
func InUniverse(titles []model.Title, universe string) []model.Title {
	var out []model.Title
	for _, t := range titles {
		if t.Universe == universe {
			out = append(out, t)
		}
	}
	return SortByOrder(out)
}

// InSaga returns the members of saga in recommended order.
func InSaga(titles []model.Title, saga model.Saga) []model.Title {
	var out []model.Title
	for _, t := range titles {
		if t.Saga == saga {
			out = append(out, t)
		}
	}
	return SortByOrder(out)
}

// SagaCard summarises one saga on the saga index.
type SagaCard struct {
	Saga  model.Saga `json:"saga"`
	Slug  string     `json:"slug"`
	Label string     `json:"label"`
	Progress
	Next *model.Title `json:"next,omitempty"`
}

// Sagas lists every saga that has titles, in narrative order.
func Sagas(titles []model.Title, watch model.WatchState) []SagaCard {
	groups := GroupBy(titles, BySaga, watch)
	cards := make([]SagaCard, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, SagaCard{
			Saga:     model.Saga(g.Key),
			Slug:     model.SagaSlug(model.Saga(g.Key)),
			Label:    g.Label,
			Progress: g.Progress(),
			Next:     g.Next,
		})
	}
	return cards
}
