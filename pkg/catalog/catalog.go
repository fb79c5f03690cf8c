// Package catalog loads and validates the immutable title catalogue.
//
// A Catalog is built once at startup and shared read-only. Titles are kept
// sorted by RecommendedOrder, which is the traversal order every engine
// assumes. The engines do not detect ordering ties themselves, so the
// catalogue refuses to build when ids or orders repeat.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/daviddao/marveljourney/pkg/model"
)

//go:embed data/titles.yaml
var embedded embed.FS

// ErrInvalid marks catalogue data that breaks a precondition. Individual
// problems are joined under it.
var ErrInvalid = errors.New("invalid catalogue")

// Catalog is an immutable, order-sorted title list.
type Catalog struct {
	titles []model.Title
	byID   map[string]int
}

// file is the on-disk shape of a catalogue file.
type file struct {
	Titles []model.Title `yaml:"titles" json:"titles"`
}

// New validates titles and returns a Catalog holding a sorted copy.
func New(titles []model.Title) (*Catalog, error) {
	if err := Validate(titles); err != nil {
		return nil, err
	}
	sorted := make([]model.Title, len(titles))
	copy(sorted, titles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecommendedOrder < sorted[j].RecommendedOrder
	})
	byID := make(map[string]int, len(sorted))
	for i, t := range sorted {
		byID[t.ID] = i
	}
	return &Catalog{titles: sorted, byID: byID}, nil
}

// Validate reports every data-quality problem in titles, joined under
// ErrInvalid. A nil return means the list is safe to build a Catalog from.
func Validate(titles []model.Title) error {
	var problems []error
	ids := make(map[string]bool, len(titles))
	orders := make(map[int]string, len(titles))

	for i, t := range titles {
		where := t.ID
		if where == "" {
			where = fmt.Sprintf("entry %d", i)
		}
		switch {
		case t.ID == "":
			problems = append(problems, fmt.Errorf("%s: empty id", where))
		case !routable(t.ID):
			problems = append(problems, fmt.Errorf("%s: id is not a single url path segment", where))
		case ids[t.ID]:
			problems = append(problems, fmt.Errorf("%s: duplicate id", where))
		}
		ids[t.ID] = true

		if t.Name == "" {
			problems = append(problems, fmt.Errorf("%s: empty name", where))
		}
		if _, ok := model.ParseTitleType(string(t.Type)); !ok {
			problems = append(problems, fmt.Errorf("%s: unknown type %q", where, t.Type))
		}
		if _, ok := model.ParseSaga(string(t.Saga)); !ok {
			problems = append(problems, fmt.Errorf("%s: unknown saga %q", where, t.Saga))
		}
		if t.Phase < 0 {
			problems = append(problems, fmt.Errorf("%s: negative phase %d", where, t.Phase))
		}
		if t.RecommendedOrder <= 0 {
			problems = append(problems, fmt.Errorf("%s: recommendedOrder must be positive, got %d", where, t.RecommendedOrder))
		} else if other, dup := orders[t.RecommendedOrder]; dup {
			problems = append(problems, fmt.Errorf("%s: recommendedOrder %d already used by %s", where, t.RecommendedOrder, other))
		} else {
			orders[t.RecommendedOrder] = where
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}

func routable(id string) bool {
	return !strings.ContainsAny(id, "/?#") && url.PathEscape(id) == id
}

// Default returns the catalogue embedded in the binary.
func Default() (*Catalog, error) {
	data, err := embedded.ReadFile("data/titles.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogue: %w", err)
	}
	titles, err := decode("titles.yaml", data)
	if err != nil {
		return nil, err
	}
	return New(titles)
}

// Load reads every file matched by patterns (doublestar globs such as
// "catalog/**/*.yaml") and builds one Catalog from their combined titles.
// Patterns that match nothing are an error, so a typo cannot silently
// produce an empty catalogue.
func Load(patterns ...string) (*Catalog, error) {
	var titles []model.Title
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q: no catalogue files matched", pattern)
		}
		sort.Strings(matches)
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading catalogue file: %w", err)
			}
			ts, err := decode(path, data)
			if err != nil {
				return nil, err
			}
			titles = append(titles, ts...)
		}
	}
	if len(seen) == 0 {
		return nil, errors.New("no catalogue patterns given")
	}
	return New(titles)
}

func decode(path string, data []byte) ([]model.Title, error) {
	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported catalogue format", path)
	}
	for i := range f.Titles {
		normalize(&f.Titles[i])
	}
	return f.Titles, nil
}

// normalize canonicalises enum spellings ("tv", "legacy") so the rest of
// the code compares against the model constants only.
func normalize(t *model.Title) {
	if tt, ok := model.ParseTitleType(string(t.Type)); ok {
		t.Type = tt
	}
	if sg, ok := model.ParseSaga(string(t.Saga)); ok {
		t.Saga = sg
	}
}

// Titles returns a copy of every title in ascending RecommendedOrder.
func (c *Catalog) Titles() []model.Title {
	out := make([]model.Title, len(c.titles))
	copy(out, c.titles)
	return out
}

// Get looks up a title by id.
func (c *Catalog) Get(id string) (model.Title, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Title{}, false
	}
	return c.titles[i], true
}

// Len returns the number of titles.
func (c *Catalog) Len() int { return len(c.titles) }

// IDs returns every title id in recommended order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.titles))
	for i, t := range c.titles {
		ids[i] = t.ID
	}
	return ids
}
