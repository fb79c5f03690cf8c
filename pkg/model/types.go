// Package model defines the core domain types for marveljourney.
//
// The catalogue is a fixed list of titles (films, shows, one-shots, specials,
// shorts). Every title carries a RecommendedOrder: a globally unique sequence
// number that defines the canonical watch order across the whole catalogue,
// independent of how titles are grouped (phase, saga, universe).
//
// Watch progress is a sparse map from title ID to a watched flag. A missing
// key means "not watched".
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TitleType is the closed set of catalogue entry kinds.
type TitleType string

const (
	TypeFilm    TitleType = "film"
	TypeShow    TitleType = "show"
	TypeOneShot TitleType = "oneShot"
	TypeSpecial TitleType = "special"
	TypeShort   TitleType = "short"
)

// TitleTypes lists every valid TitleType in display order.
var TitleTypes = []TitleType{TypeFilm, TypeShow, TypeOneShot, TypeSpecial, TypeShort}

// ParseTitleType resolves s case-insensitively. "tv" is accepted as an
// alias for TypeShow.
func ParseTitleType(s string) (TitleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "film":
		return TypeFilm, true
	case "show", "tv":
		return TypeShow, true
	case "oneshot":
		return TypeOneShot, true
	case "special":
		return TypeSpecial, true
	case "short":
		return TypeShort, true
	}
	return "", false
}

// Saga is the closed set of narrative groupings.
type Saga string

const (
	SagaInfinity   Saga = "Infinity"
	SagaMultiverse Saga = "Multiverse"
	SagaLegacy     Saga = "Legacy"
)

// Sagas lists every saga in narrative order.
var Sagas = []Saga{SagaInfinity, SagaMultiverse, SagaLegacy}

// ParseSaga resolves s case-insensitively.
func ParseSaga(s string) (Saga, bool) {
	for _, sg := range Sagas {
		if strings.EqualFold(string(sg), strings.TrimSpace(s)) {
			return sg, true
		}
	}
	return "", false
}

// WatchLink is an external place to watch a title.
type WatchLink struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Title is an immutable catalogue entry.
type Title struct {
	ID               string    `yaml:"id" json:"id"`
	Name             string    `yaml:"name" json:"name"`
	Type             TitleType `yaml:"type" json:"type"`
	Saga             Saga      `yaml:"saga" json:"saga"`
	Phase            int       `yaml:"phase,omitempty" json:"phase,omitempty"`
	Universe         string    `yaml:"universe" json:"universe"`
	RecommendedOrder int       `yaml:"recommendedOrder" json:"recommendedOrder"`
	Year             int       `yaml:"year,omitempty" json:"year,omitempty"`
	Synopsis         string    `yaml:"synopsis,omitempty" json:"synopsis,omitempty"`

	PosterSrc         string      `yaml:"posterSrc" json:"posterSrc"`
	BackdropSrc       string      `yaml:"backdropSrc,omitempty" json:"backdropSrc,omitempty"`
	TrailerPreviewSrc string      `yaml:"trailerMutedPreviewSrc,omitempty" json:"trailerMutedPreviewSrc,omitempty"`
	TrailerURL        string      `yaml:"trailerUrl,omitempty" json:"trailerUrl,omitempty"`
	WatchLinks        []WatchLink `yaml:"watchUrl,omitempty" json:"watchUrl,omitempty"`
}

// Unsorted reports whether the title has no phase.
func (t Title) Unsorted() bool { return t.Phase <= 0 }

// PhaseLabel returns the display label for a phase number.
func PhaseLabel(phase int) string {
	if phase <= 0 {
		return "Unsorted"
	}
	return "Phase " + strconv.Itoa(phase)
}

// String implements fmt.Stringer for log and CLI output.
func (t Title) String() string {
	return fmt.Sprintf("#%d %s (%s)", t.RecommendedOrder, t.Name, t.ID)
}

// WatchState maps title IDs to a watched flag. Absent keys are not watched.
// Implementations may store explicit false entries.
type WatchState map[string]bool

// Watched reports whether id is marked watched. Safe on a nil map.
func (w WatchState) Watched(id string) bool { return w[id] }

// Count returns the number of entries marked true.
func (w WatchState) Count() int {
	n := 0
	for _, v := range w {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy. A nil state clones to an empty map.
func (w WatchState) Clone() WatchState {
	out := make(WatchState, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
