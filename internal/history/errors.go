package history

import "errors"

var (
	// ErrClosed is returned when operating on a closed store.
	ErrClosed = errors.New("history: store is closed")

	// ErrEmptyLine is returned when appending a blank command line.
	ErrEmptyLine = errors.New("history: empty command line")
)
