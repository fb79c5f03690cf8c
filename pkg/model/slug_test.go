package model

import "testing"

func TestSagaSlugRoundTrip(t *testing.T) {
	for _, s := range Sagas {
		got, ok := SagaFromSlug(SagaSlug(s))
		if !ok || got != s {
			t.Fatalf("SagaFromSlug(SagaSlug(%q)) = %q/%v", s, got, ok)
		}
	}
	if _, ok := SagaFromSlug(""); ok {
		t.Fatal("empty slug should not resolve")
	}
}

func TestUniverseSlug(t *testing.T) {
	cases := []struct {
		universe string
		slug     string
	}{
		{"Earth-616", "Earth-616"},
		{"Earth-616/Alt", "Earth-616~Alt"},
		{"Earth 199999", "Earth%20199999"},
	}
	for _, tc := range cases {
		t.Run(tc.universe, func(t *testing.T) {
			if got := UniverseSlug(tc.universe); got != tc.slug {
				t.Fatalf("UniverseSlug(%q) = %q, want %q", tc.universe, got, tc.slug)
			}
			if got := UniverseFromSlug(tc.slug); got != tc.universe {
				t.Fatalf("UniverseFromSlug(%q) = %q, want %q", tc.slug, got, tc.universe)
			}
		})
	}
}

func TestEmbedTrailerURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch link", "https://www.youtube.com/watch?v=8ugaeA-nMTc", "https://www.youtube.com/embed/8ugaeA-nMTc"},
		{"short link", "https://youtu.be/8ugaeA-nMTc", "https://www.youtube.com/embed/8ugaeA-nMTc"},
		{"already embed", "https://www.youtube.com/embed/abc", "https://www.youtube.com/embed/abc"},
		{"other host", "https://example.com/trailer.mp4", "https://example.com/trailer.mp4"},
		{"not a url", "trailer", "trailer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EmbedTrailerURL(tc.in); got != tc.want {
				t.Fatalf("EmbedTrailerURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTitleRoute(t *testing.T) {
	if got := TitleRoute("iron-man"); got != "/title/iron-man" {
		t.Fatalf("TitleRoute = %q", got)
	}
}
