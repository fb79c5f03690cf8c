// Package watch owns the single source of truth for which titles have been
// watched.
//
// Lifecycle: a Store starts empty, hydrates once from its KV backend, and is
// then mutated only through Toggle, Set, MarkAll and Reset. Every mutation
// publishes a new immutable snapshot, bumps the version, notifies
// subscribers once, and writes the whole map back as one JSON object.
//
// Persistence is best-effort. A storage read that fails or holds corrupt
// JSON hydrates to "nothing watched"; a failed write leaves the in-memory
// change in place and is reported through ErrNotPersisted.
package watch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/daviddao/marveljourney/pkg/model"
	"github.com/daviddao/marveljourney/pkg/store"
)

// DefaultKey is the storage key for the persisted map. The suffix is the
// schema version; a format change needs a new key, not a migration.
const DefaultKey = "marvel_journey_watched_v1"

// ErrNotPersisted wraps storage write failures. The state change it
// accompanies has already been applied in memory.
var ErrNotPersisted = errors.New("watch state not persisted")

// Snapshot is an immutable view of the watch state at one version.
// Callers must not modify State.
type Snapshot struct {
	State   model.WatchState
	Version uint64
}

// Store holds the watch state. Safe for concurrent use.
type Store struct {
	kv  store.KV
	key string
	log *zap.Logger

	mu       sync.RWMutex
	state    model.WatchState
	version  uint64
	hydrated bool

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithLogger sets the logger used for best-effort storage failures.
func WithLogger(log *zap.Logger) Option { return func(s *Store) { s.log = log } }

// New returns an empty, unhydrated Store backed by kv.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   DefaultKey,
		log:   zap.NewNop(),
		state: model.WatchState{},
		subs:  make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Hydrate loads the persisted map on first call; later calls do nothing,
// so in-session changes are never overwritten by a second mount. It never
// fails: unreadable or corrupt storage hydrates to an empty map.
func (s *Store) Hydrate() {
	s.mu.Lock()
	snap, changed := s.hydrateLocked()
	s.mu.Unlock()
	if changed {
		s.notify(snap)
	}
}

func (s *Store) hydrateLocked() (Snapshot, bool) {
	if s.hydrated {
		return Snapshot{}, false
	}
	s.hydrated = true

	loaded := s.load()
	if len(loaded) == 0 {
		return Snapshot{}, false
	}
	s.state = loaded
	s.version++
	return Snapshot{State: s.state, Version: s.version}, true
}

func (s *Store) load() model.WatchState {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warn("watch state unreadable, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.log.Warn("watch state corrupt, discarding",
			zap.String("key", s.key), zap.Int("bytes", len(raw)), zap.Error(err))
		return nil
	}
	return model.WatchState(m)
}

// Hydrated reports whether Hydrate has run.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// IsWatched reports the current flag for id. Before hydration every id
// reads as unwatched.
func (s *Store) IsWatched(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[id]
}

// Snapshot returns the current state and version.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, Version: s.version}
}

// Version increments once per applied transition.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Toggle flips id (absent counts as false) and returns the new value.
func (s *Store) Toggle(id string) (bool, error) {
	var now bool
	err := s.apply(func(next model.WatchState) {
		now = !next[id]
		next[id] = now
	})
	return now, err
}

// Set stores an absolute value for id.
func (s *Store) Set(id string, watched bool) error {
	return s.apply(func(next model.WatchState) { next[id] = watched })
}

// MarkAll sets every id to watched as a single transition with a single
// persisted write.
func (s *Store) MarkAll(ids []string, watched bool) error {
	return s.apply(func(next model.WatchState) {
		for _, id := range ids {
			next[id] = watched
		}
	})
}

// Reset clears all progress and persists the empty map.
func (s *Store) Reset() error {
	return s.apply(func(next model.WatchState) {
		for id := range next {
			delete(next, id)
		}
	})
}

// apply runs mutate on a copy of the state, publishes it, persists it and
// notifies subscribers. Mutations hydrate first so an early write cannot
// replace stored progress with a near-empty map.
func (s *Store) apply(mutate func(model.WatchState)) error {
	s.mu.Lock()
	s.hydrateLocked()
	next := s.state.Clone()
	mutate(next)
	s.state = next
	s.version++
	snap := Snapshot{State: s.state, Version: s.version}
	err := s.persistLocked(next)
	s.mu.Unlock()

	s.notify(snap)
	return err
}

// persistLocked runs under s.mu so concurrent writers reach storage in the
// same order their transitions were applied.
func (s *Store) persistLocked(state model.WatchState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrNotPersisted, err)
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		s.log.Warn("watch state write failed, keeping in-memory change",
			zap.String("key", s.key), zap.Int("entries", len(state)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

// Subscribe registers fn to receive every new snapshot. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
