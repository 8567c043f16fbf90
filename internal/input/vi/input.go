package vi

// Input is a forward-only, peekable cursor over the unconsumed tail of the
// pending keystroke buffer. The buffer itself is populated and owned by the
// caller; parsing re-reads it from the start on every new keystroke.
type Input struct {
	runes []rune
	pos   int
}

// NewInput creates a cursor over the pending keystrokes.
func NewInput(runes []rune) *Input {
	return &Input{runes: runes}
}

// NewInputString creates a cursor over the characters of s.
func NewInputString(s string) *Input {
	return &Input{runes: []rune(s)}
}

// Peek returns the next character without consuming it.
func (in *Input) Peek() (rune, bool) {
	if in.pos >= len(in.runes) {
		return 0, false
	}
	return in.runes[in.pos], true
}

// Next consumes and returns the next character.
func (in *Input) Next() (rune, bool) {
	r, ok := in.Peek()
	if ok {
		in.pos++
	}
	return r, ok
}

// Consumed returns how many characters have been consumed so far.
func (in *Input) Consumed() int {
	return in.pos
}

// Remaining returns how many characters are left.
func (in *Input) Remaining() int {
	return len(in.runes) - in.pos
}
