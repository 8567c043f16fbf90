package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity bounds the number of entries kept in memory.
const DefaultCapacity = 1000

// Store holds accepted command lines, newest last.
//
// A Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	path     string
	file     *os.File
	closed   bool
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity bounds the number of entries kept. Values below one fall
// back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithFile mirrors entries to a JSON-lines file at path. Existing entries
// are loaded on open.
func WithFile(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

func withClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a history store. When a file path is configured the file is
// created if missing and its entries are loaded.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		return s, nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	s.file = f

	if err := s.load(); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// load reads entries from the open file, keeping the newest capacity
// entries. Malformed lines are skipped.
func (s *Store) load() error {
	if _, err := s.file.Seek(0, 0); err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	scanner := bufio.NewScanner(s.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if e.CommandLine == "" {
			continue
		}
		s.entries = append(s.entries, e)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
	if _, err := s.file.Seek(0, 2); err != nil {
		return fmt.Errorf("seek history file: %w", err)
	}
	return nil
}

// Append records an accepted command line. Blank lines and an exact repeat
// of the newest entry are rejected without error beyond ErrEmptyLine for
// the former.
func (s *Store) Append(line string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Entry{}, ErrClosed
	}
	if strings.TrimSpace(line) == "" {
		return Entry{}, ErrEmptyLine
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].CommandLine == line {
		return s.entries[n-1], nil
	}

	e := newEntry(line, s.now())
	s.entries = append(s.entries, e)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}

	if s.file != nil {
		data, err := json.Marshal(e)
		if err != nil {
			return Entry{}, fmt.Errorf("encode history entry: %w", err)
		}
		if _, err := s.file.Write(append(data, '\n')); err != nil {
			return Entry{}, fmt.Errorf("write history entry: %w", err)
		}
	}
	return e, nil
}

// Len returns the number of entries held in memory.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Search returns entries whose command line contains term, newest first,
// with repeated command lines reduced to their most recent occurrence.
// A non-positive limit returns all matches; an empty term matches every
// entry.
func (s *Store) Search(term string, limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entry
	seen := make(map[string]struct{})
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if term != "" && !strings.Contains(e.CommandLine, term) {
			continue
		}
		if _, dup := seen[e.CommandLine]; dup {
			continue
		}
		seen[e.CommandLine] = struct{}{}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Newest returns the most recent entry matching term, or false when no
// entry matches.
func (s *Store) Newest(term string) (Entry, bool) {
	matches := s.Search(term, 1)
	if len(matches) == 0 {
		return Entry{}, false
	}
	return matches[0], true
}

// Compact rewrites the backing file to hold only the in-memory entries.
// It is a no-op for memory-only stores.
func (s *Store) Compact() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.file == nil {
		return nil
	}

	if err := s.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate history file: %w", err)
	}
	if _, err := s.file.Seek(0, 0); err != nil {
		return fmt.Errorf("seek history file: %w", err)
	}

	w := bufio.NewWriter(s.file)
	for _, e := range s.entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode history entry: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush history file: %w", err)
	}
	return nil
}

// Close releases the backing file, if any. A closed store rejects further
// appends.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.file == nil {
		return nil
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}
	return nil
}
