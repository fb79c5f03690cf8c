package store

import (
	"errors"
	"testing"
)

// exerciseKV runs the same contract checks against any KV implementation.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	if _, ok, err := kv.Get("a"); ok || err != nil {
		t.Fatalf("empty Get: ok=%v err=%v", ok, err)
	}
	if err := kv.Set("b", "2"); err != nil {
		t.Fatalf("Set b: %v", err)
	}
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("Set a: %v", err)
	}
	if v, ok, _ := kv.Get("a"); !ok || v != "1" {
		t.Fatalf("Get a = %q/%v", v, ok)
	}
	keys, err := kv.Keys()
	if err != nil || len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys = %v, %v", keys, err)
	}
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get("a"); ok {
		t.Fatal("a still present after Delete")
	}
}

func TestKVContract_SQLite(t *testing.T) {
	exerciseKV(t, newTestStore(t))
}

func TestKVContract_Memory(t *testing.T) {
	exerciseKV(t, &Memory{})
}

func TestMemory_FailureModes(t *testing.T) {
	m := NewMemory(map[string]string{"k": "v"})

	m.FailReads(true)
	if _, _, err := m.Get("k"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Get in fail mode: %v", err)
	}
	if _, err := m.Keys(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Keys in fail mode: %v", err)
	}
	m.FailReads(false)

	m.FailWrites(true)
	if err := m.Set("k", "other"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Set in fail mode: %v", err)
	}
	m.FailWrites(false)

	if v, _, _ := m.Get("k"); v != "v" {
		t.Fatalf("failed write changed value to %q", v)
	}
	if m.Writes() != 0 {
		t.Fatalf("Writes = %d, want 0", m.Writes())
	}
}

func TestNewMemory_CopiesSeed(t *testing.T) {
	seed := map[string]string{"k": "v"}
	m := NewMemory(seed)
	m.Set("k", "changed")
	if seed["k"] != "v" {
		t.Fatal("Memory must not alias its seed map")
	}
}
