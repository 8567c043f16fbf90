package edit

import (
	"fmt"
	"strings"
)

// Signal is a UI-level effect requested by the input layer.
type Signal uint8

const (
	// SignalNone represents no signal.
	SignalNone Signal = iota

	// SignalRepaint requests a full repaint of the prompt and line.
	SignalRepaint

	// SignalSearchHistory requests the history search UI.
	SignalSearchHistory
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalRepaint:
		return "repaint"
	case SignalSearchHistory:
		return "searchHistory"
	default:
		return fmt.Sprintf("Signal(%d)", s)
	}
}

// Event is a fully resolved user action: the batch of commands and signals
// produced by one dispatch. The executor stores the most recent Event so
// that the repeat command can replay it verbatim.
type Event struct {
	// Commands holds the buffer instructions of the action, in order.
	Commands []Command

	// Signals holds the UI signals of the action, in order.
	Signals []Signal
}

// IsEmpty returns true if the event carries no commands and no signals.
func (e Event) IsEmpty() bool {
	return len(e.Commands) == 0 && len(e.Signals) == 0
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := Event{}
	if len(e.Commands) > 0 {
		out.Commands = make([]Command, len(e.Commands))
		copy(out.Commands, e.Commands)
	}
	if len(e.Signals) > 0 {
		out.Signals = make([]Signal, len(e.Signals))
		copy(out.Signals, e.Signals)
	}
	return out
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	parts := make([]string, 0, len(e.Commands)+len(e.Signals))
	for _, c := range e.Commands {
		parts = append(parts, c.String())
	}
	for _, s := range e.Signals {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
