package editor

import "fmt"

// Mode identifies the editing mode of a session.
type Mode uint8

const (
	// ModeInsert is the default mode: printable keys insert characters.
	ModeInsert Mode = iota

	// ModeNormal interprets keys as Vi normal-mode commands.
	ModeNormal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeNormal:
		return "normal"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}
