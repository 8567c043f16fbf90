package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newMemStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func appendAll(t *testing.T, s *Store, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := s.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}
}

func lines(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.CommandLine
	}
	return out
}

func TestAppendRejectsBlank(t *testing.T) {
	s := newMemStore(t)
	if _, err := s.Append("   "); !errors.Is(err, ErrEmptyLine) {
		t.Errorf("expected ErrEmptyLine, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestAppendSkipsConsecutiveDuplicate(t *testing.T) {
	s := newMemStore(t)
	first, _ := s.Append("ls")
	second, _ := s.Append("ls")

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
	if first.ID != second.ID {
		t.Error("expected the duplicate append to return the existing entry")
	}
}

func TestCapacityTrimsOldest(t *testing.T) {
	s := newMemStore(t, WithCapacity(3))
	appendAll(t, s, "one", "two", "three", "four")

	got := lines(s.Entries())
	want := []string{"two", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSearchNewestFirstWithDedup(t *testing.T) {
	s := newMemStore(t)
	appendAll(t, s,
		"find me once",
		"test alias",
		"find me as well",
		"find me once",
		"final find",
	)

	got := lines(s.Search("find", 0))
	want := []string{"final find", "find me once", "find me as well"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSearchHonorsLimit(t *testing.T) {
	s := newMemStore(t)
	appendAll(t, s, "git status", "git log", "git diff")

	got := s.Search("git", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].CommandLine != "git diff" {
		t.Errorf("expected newest match first, got %q", got[0].CommandLine)
	}
}

func TestNewest(t *testing.T) {
	s := newMemStore(t)
	appendAll(t, s, "make build", "make test")

	e, ok := s.Newest("make")
	if !ok || e.CommandLine != "make test" {
		t.Errorf("expected %q, got %q (ok=%v)", "make test", e.CommandLine, ok)
	}
	if _, ok := s.Newest("missing"); ok {
		t.Error("expected no match for an absent term")
	}
}

func TestFilePersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	s, err := New(WithFile(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	appendAll(t, s, "first", "second")
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(WithFile(path))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got := lines(reopened.Entries())
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("expected [first second], got %v", got)
	}
	for _, e := range reopened.Entries() {
		if e.AcceptedAt.IsZero() {
			t.Error("expected timestamps to survive the round trip")
		}
	}
}

func TestLoadTrimsToCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	s, err := New(WithFile(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	appendAll(t, s, "a", "b", "c", "d")
	s.Close()

	reopened, err := New(WithFile(path), WithCapacity(2))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got := lines(reopened.Entries())
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("expected [c d], got %v", got)
	}
}

func TestCompactRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	s, err := New(WithFile(path), WithCapacity(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	appendAll(t, s, "a", "b", "c")
	if err := s.Compact(); err != nil {
		t.Fatalf("Compact: %v", err)
	}
	s.Close()

	reopened, err := New(WithFile(path))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got := lines(reopened.Entries())
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("expected [b c] after compaction, got %v", got)
	}
}

func TestClosedStoreRejectsAppend(t *testing.T) {
	s := newMemStore(t)
	s.Close()
	if _, err := s.Append("late"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestCompleter(t *testing.T) {
	s := newMemStore(t)
	appendAll(t, s, "git status", "ls", "git log", "git status")

	c := NewCompleter(s, 2)
	got := c.Complete("git")
	want := []string{"git status", "git log"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEntriesCarryDistinctIDs(t *testing.T) {
	s := newMemStore(t, withClock(func() time.Time { return time.Unix(0, 0) }))
	appendAll(t, s, "one", "two")

	entries := s.Entries()
	if entries[0].ID == entries[1].ID {
		t.Error("expected distinct entry IDs")
	}
}
