package model

import (
	"net/url"
	"strings"
)

// SagaSlug returns the route slug for a saga ("infinity", "multiverse", ...).
func SagaSlug(s Saga) string { return strings.ToLower(string(s)) }

// SagaFromSlug resolves a route slug back to its saga.
func SagaFromSlug(slug string) (Saga, bool) {
	if slug == "" {
		return "", false
	}
	return ParseSaga(slug)
}

// UniverseSlug encodes a universe name as a single path segment.
// Slashes become '~' before escaping so "Earth-616/Alt" stays one segment.
func UniverseSlug(universe string) string {
	return url.PathEscape(strings.ReplaceAll(universe, "/", "~"))
}

// UniverseFromSlug reverses UniverseSlug. Malformed escapes are returned
// with only the '~' substitution applied.
func UniverseFromSlug(slug string) string {
	s, err := url.PathUnescape(slug)
	if err != nil {
		s = slug
	}
	return strings.ReplaceAll(s, "~", "/")
}

// TitleRoute is the detail route for a title ID.
func TitleRoute(id string) string { return "/title/" + id }

// EmbedTrailerURL converts a YouTube watch or short link into its embed
// form. Embed links and anything unparsable are returned unchanged.
func EmbedTrailerURL(raw string) string {
	if strings.Contains(raw, "/embed/") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if v := u.Query().Get("v"); v != "" {
		return "https://www.youtube.com/embed/" + v
	}
	if strings.Contains(u.Hostname(), "youtu.be") {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	}
	return raw
}
