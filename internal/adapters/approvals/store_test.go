package approvals_test

import (
	"os"
	"path/filepath"
	"testing"

	"flex_reviews/internal/adapters/approvals"
)

func TestStore_SetPersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()

	s := approvals.New(dir)
	s.Set("hostaway-7454", true)
	s.Set("google-1-Ana", false)

	// A second store over the same directory must see the durable state.
	s2 := approvals.New(dir)
	if !s2.Get("hostaway-7454") {
		t.Fatalf("expected hostaway-7454 approved after reload")
	}
	if s2.Get("google-1-Ana") {
		t.Fatalf("expected google-1-Ana unapproved after reload")
	}
	if s2.Get("never-seen") {
		t.Fatalf("unknown id must default to false")
	}
}

func TestStore_ToggleRoundTrip(t *testing.T) {
	s := approvals.New(t.TempDir())

	if got := s.Toggle("r1"); !got {
		t.Fatalf("first toggle: got %v, want true", got)
	}
	if !s.Get("r1") {
		t.Fatalf("store must report true after first toggle")
	}
	if got := s.Toggle("r1"); got {
		t.Fatalf("second toggle: got %v, want false", got)
	}
	if s.Get("r1") {
		t.Fatalf("store must report false after second toggle")
	}
}

func TestStore_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "approvals.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s := approvals.New(dir)
	if s.Count() != 0 {
		t.Fatalf("corrupt file must reset to empty map, got count %d", s.Count())
	}
	if s.Get("anything") {
		t.Fatalf("corrupt file must not approve anything")
	}

	// The store must still be writable afterwards.
	s.Set("r1", true)
	if !approvals.New(dir).Get("r1") {
		t.Fatalf("store must recover and persist after corrupt load")
	}
}

func TestStore_ApprovedIDsAndCount(t *testing.T) {
	s := approvals.New(t.TempDir())
	s.Set("a", true)
	s.Set("b", false)
	s.Set("c", true)

	ids := s.ApprovedIDs()
	if len(ids) != 2 {
		t.Fatalf("approved ids: got %d, want 2", len(ids))
	}
	if _, ok := ids["a"]; !ok {
		t.Fatalf("expected a in approved set")
	}
	if _, ok := ids["b"]; ok {
		t.Fatalf("b must not be in approved set")
	}
	if s.Count() != 2 {
		t.Fatalf("count: got %d, want 2", s.Count())
	}

	s.Clear()
	if s.Count() != 0 || len(s.ApprovedIDs()) != 0 {
		t.Fatalf("clear must empty the store")
	}
}
