package view

import (
	"strconv"
	"strings"

	"github.com/daviddao/marveljourney/pkg/model"
)

// All disables the type or phase filter.
const All = "all"

// Filter narrows a title list. Each field is optional: "" and "all"
// disable Type and Phase, a blank Query disables search. Set fields are
// ANDed.
type Filter struct {
	// Type matches a TitleType. "tv" is accepted for show.
	Type string `json:"type,omitempty"`
	// Phase matches the phase number as a string. "0" and "unsorted" select
	// titles without a phase.
	Phase string `json:"phase,omitempty"`
	// Query is a case-insensitive substring of the title name.
	Query string `json:"q,omitempty"`
}

// Active reports whether any field narrows the result.
func (f Filter) Active() bool {
	return enabled(f.Type) || enabled(f.Phase) || strings.TrimSpace(f.Query) != ""
}

func enabled(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Match reports whether t passes every enabled predicate.
func (f Filter) Match(t model.Title) bool {
	return f.matcher()(t)
}

func (f Filter) matcher() func(model.Title) bool {
	var preds []func(model.Title) bool

	if enabled(f.Type) {
		want, ok := model.ParseTitleType(f.Type)
		if !ok {
			want = model.TitleType(strings.TrimSpace(f.Type))
		}
		preds = append(preds, func(t model.Title) bool { return t.Type == want })
	}
	if enabled(f.Phase) {
		want := strings.TrimSpace(f.Phase)
		if strings.EqualFold(want, "unsorted") {
			want = UnsortedKey
		}
		preds = append(preds, func(t model.Title) bool {
			phase := t.Phase
			if t.Unsorted() {
				phase = 0
			}
			return strconv.Itoa(phase) == want
		})
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		preds = append(preds, func(t model.Title) bool {
			return strings.Contains(strings.ToLower(t.Name), q)
		})
	}

	return func(t model.Title) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// FilterTitles returns the titles matching f in their input order. The
// input slice is not modified; the result is always a fresh slice.
func FilterTitles(titles []model.Title, f Filter) []model.Title {
	match := f.matcher()
	out := make([]model.Title, 0, len(titles))
	for _, t := range titles {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}
