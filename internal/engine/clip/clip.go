// Package clip provides the cut-buffer abstraction used for Vi-style cut
// and paste.
//
// Two implementations exist: Local keeps content inside the process, and
// System mirrors it into the OS clipboard. Default picks System when the
// OS clipboard is usable and falls back to Local otherwise.
package clip

import "github.com/atotto/clipboard"

// Mode determines how clipboard content should be inserted on paste.
type Mode uint8

const (
	// ModeNormal inserts content directly at the cursor position.
	ModeNormal Mode = iota

	// ModeLines inserts content as whole lines.
	ModeLines
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeLines:
		return "lines"
	default:
		return "unknown"
	}
}

// Clipboard stores cut text for later pasting.
type Clipboard interface {
	// Set stores content with its paste mode.
	Set(content string, mode Mode)

	// Get returns the stored content and its paste mode.
	Get() (string, Mode)

	// Clear empties the clipboard.
	Clear()

	// Len returns the stored content length in bytes.
	Len() int
}

// Local is an in-process clipboard, invisible to other applications.
type Local struct {
	content string
	mode    Mode
}

// NewLocal creates an empty local clipboard.
func NewLocal() *Local {
	return &Local{}
}

// Set stores content with its paste mode.
func (c *Local) Set(content string, mode Mode) {
	c.content = content
	c.mode = mode
}

// Get returns the stored content and its paste mode.
func (c *Local) Get() (string, Mode) {
	return c.content, c.mode
}

// Clear empties the clipboard.
func (c *Local) Clear() {
	c.Set("", ModeNormal)
}

// Len returns the stored content length in bytes.
func (c *Local) Len() int {
	return len(c.content)
}

// System mirrors cut text into the OS clipboard. A local copy of the last
// Set is kept so the paste mode survives round trips through the OS; when
// the OS content no longer matches (another application wrote it), Get
// falls back to ModeNormal.
type System struct {
	localCopy string
	mode      Mode
}

// NewSystem creates a system clipboard. It fails when the OS clipboard is
// not accessible (no display, unsupported platform).
func NewSystem() (*System, error) {
	// Probe accessibility up front so callers can fall back early.
	if _, err := clipboard.ReadAll(); err != nil {
		return nil, err
	}
	return &System{}, nil
}

// Set stores content with its paste mode.
func (c *System) Set(content string, mode Mode) {
	c.localCopy = content
	c.mode = mode
	// Failure to write through leaves the local copy authoritative.
	_ = clipboard.WriteAll(content)
}

// Get returns the stored content and its paste mode.
func (c *System) Get() (string, Mode) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return c.localCopy, c.mode
	}
	if content == c.localCopy {
		// The content was cut inside the editor; the last cut fixed the mode.
		return content, c.mode
	}
	// Another application changed it; insert directly.
	return content, ModeNormal
}

// Clear empties the clipboard.
func (c *System) Clear() {
	c.Set("", ModeNormal)
}

// Len returns the stored content length in bytes.
func (c *System) Len() int {
	content, _ := c.Get()
	return len(content)
}

// Default returns a System clipboard when the OS clipboard is usable and a
// Local clipboard otherwise.
func Default() Clipboard {
	if sys, err := NewSystem(); err == nil {
		return sys
	}
	return NewLocal()
}
