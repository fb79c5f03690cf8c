package store

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New(%q): %v", dbPath, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_Missing(t *testing.T) {
	s := newTestStore(t)
	v, ok, err := s.Get("marvel_journey_watched_v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("missing key: got %q/%v, want empty/false", v, ok)
	}
}

func TestSetGet(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("k", `{"iron-man":true}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if v != `{"iron-man":true}` {
		t.Fatalf("got %q", v)
	}
}

func TestSet_LastWriteWins(t *testing.T) {
	s := newTestStore(t)
	s.Set("k", "one")
	s.Set("k", "two")
	v, _, _ := s.Get("k")
	if v != "two" {
		t.Fatalf("got %q, want two", v)
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 {
		t.Fatalf("upsert should keep one row, got keys %v", keys)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	s.Set("k", "v")
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after Delete")
	}
	if err := s.Delete("never-set"); err != nil {
		t.Fatalf("Delete of missing key: %v", err)
	}
}

func TestKeys_Ordered(t *testing.T) {
	s := newTestStore(t)
	for _, k := range []string{"zeta", "alpha", "mid"} {
		s.Set(k, "x")
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	if _, ok, err := s.UpdatedAt("k"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	before := time.Now().UTC().Add(-time.Second)
	s.Set("k", "v")
	ts, ok, err := s.UpdatedAt("k")
	if err != nil || !ok {
		t.Fatalf("UpdatedAt: ok=%v err=%v", ok, err)
	}
	if ts.Before(before) {
		t.Fatalf("updated_at %v earlier than %v", ts, before)
	}
}

func TestReopenKeepsValues(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journey.db")
	s1, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	s1.Set("k", "persisted")
	s1.Close()

	s2, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	v, ok, err := s2.Get("k")
	if err != nil || !ok || v != "persisted" {
		t.Fatalf("after reopen: %q/%v/%v", v, ok, err)
	}
}
