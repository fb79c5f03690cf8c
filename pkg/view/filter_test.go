package view

import (
	"testing"

	"github.com/daviddao/marveljourney/pkg/model"
)

func filterFixture() []model.Title {
	return []model.Title{
		mk("thor", 16, 1, model.TypeFilm, "Thor"),
		mk("thor-the-dark-world", 19, 2, model.TypeFilm, "Thor: The Dark World"),
		mk("iron-man-3", 20, 2, model.TypeFilm, "Iron Man 3"),
		mk("all-hail-the-king", 21, 2, model.TypeOneShot, "All Hail the King"),
		mk("loki-s1", 36, 4, model.TypeShow, "Loki Season 1"),
		mk("blade", 1, 0, model.TypeFilm, "Blade"),
		mk("thor-ragnarok", 32, 3, model.TypeFilm, "Thor: Ragnarok"),
	}
}

func TestFilterTitles(t *testing.T) {
	titles := filterFixture()
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"conjunction", Filter{Type: "film", Phase: "2", Query: "thor"}, []string{"thor-the-dark-world"}},
		{"type only", Filter{Type: "oneShot"}, []string{"all-hail-the-king"}},
		{"tv alias", Filter{Type: "tv"}, []string{"loki-s1"}},
		{"unknown type matches nothing", Filter{Type: "podcast"}, []string{}},
		{"phase only", Filter{Phase: "2"}, []string{"thor-the-dark-world", "iron-man-3", "all-hail-the-king"}},
		{"unsorted phase", Filter{Phase: "unsorted"}, []string{"blade"}},
		{"phase zero", Filter{Phase: "0"}, []string{"blade"}},
		{"query is case-insensitive", Filter{Query: "  THOR "}, []string{"thor", "thor-the-dark-world", "thor-ragnarok"}},
		{"query matches name not id", Filter{Query: "s1"}, []string{}},
		{"all wildcards", Filter{Type: "all", Phase: "ALL"}, ids(titles)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterTitles(titles, tt.filter))
			if !equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterTitles_AllReturnsInputUnchanged(t *testing.T) {
	titles := filterFixture()
	before := ids(titles)
	got := FilterTitles(titles, Filter{Type: "all"})
	if !equal(ids(got), before) {
		t.Fatalf("got %v, want %v", ids(got), before)
	}
	got[0].Name = "changed"
	if titles[0].Name == "changed" {
		t.Fatal("result aliases the input slice")
	}
	if !equal(ids(titles), before) {
		t.Fatal("input was reordered")
	}
}

func TestFilter_Active(t *testing.T) {
	if (Filter{}).Active() || (Filter{Type: "all", Phase: "all", Query: " "}).Active() {
		t.Fatal("wildcard filter reported active")
	}
	if !(Filter{Query: "x"}).Active() {
		t.Fatal("query filter reported inactive")
	}
}
