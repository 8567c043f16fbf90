package vi

import "github.com/dshills/viline/internal/edit"

// State is the per-session memory of the interpreter. It is owned by the
// single active editing session and must not be shared across sessions or
// goroutines.
type State struct {
	// Previous is the last fully resolved action, replayed by ".". The
	// executor updates it after every non-incomplete dispatch.
	Previous *edit.Event

	// LastCharSearch is the most recent character search used in a cut.
	// It is written only when a character-search motion is combined with
	// delete or change, and is never cleared automatically.
	LastCharSearch *CharSearch
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{}
}

// RecordAction stores ev as the most recently resolved action. Incomplete
// or empty dispatches must not be recorded; that is the caller's contract.
func (s *State) RecordAction(ev edit.Event) {
	clone := ev.Clone()
	s.Previous = &clone
}
