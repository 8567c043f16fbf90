package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one accepted command line.
type Entry struct {
	// ID identifies the entry across sessions.
	ID uuid.UUID `json:"id"`

	// CommandLine is the accepted line as typed.
	CommandLine string `json:"command_line"`

	// AcceptedAt is when the line was accepted.
	AcceptedAt time.Time `json:"accepted_at"`
}

func newEntry(line string, at time.Time) Entry {
	return Entry{
		ID:          uuid.New(),
		CommandLine: line,
		AcceptedAt:  at,
	}
}
