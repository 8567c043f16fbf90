package vi

import "fmt"

// MotionKind identifies a normal-mode motion.
type MotionKind uint8

const (
	// MotionEnd moves to the end of the line ("$").
	MotionEnd MotionKind = iota

	// MotionLine spans the whole current line; it is synthesized by
	// doubling an operator's trigger key (dd, cc), never parsed directly.
	MotionLine

	// MotionNextWord moves to the start of the next word ("w").
	MotionNextWord

	// MotionNextBigWord moves to the start of the next WORD ("W").
	MotionNextBigWord

	// MotionNextWordEnd moves to the end of the current or next word ("e").
	MotionNextWordEnd

	// MotionNextBigWordEnd moves to the end of the current or next WORD
	// ("E").
	MotionNextBigWordEnd

	// MotionPreviousWord moves to the start of the previous word ("b").
	MotionPreviousWord

	// MotionPreviousBigWord moves to the start of the previous WORD ("B").
	MotionPreviousBigWord

	// MotionRightUntil seeks right through the target character,
	// inclusive ("f<char>").
	MotionRightUntil

	// MotionRightBefore seeks right up to the target character, exclusive
	// ("t<char>").
	MotionRightBefore

	// MotionLeftUntil seeks left through the target character, inclusive
	// ("F<char>").
	MotionLeftUntil

	// MotionLeftBefore seeks left up to the target character, exclusive
	// ("T<char>").
	MotionLeftBefore

	// MotionStart moves to the start of the line ("0").
	MotionStart

	// MotionLeft moves one character left ("h").
	MotionLeft

	// MotionRight moves one character right ("l").
	MotionRight

	// MotionUp moves one line up ("k").
	MotionUp

	// MotionDown moves one line down ("j").
	MotionDown

	// MotionReplayCharSearch repeats the last character search (";").
	MotionReplayCharSearch

	// MotionReverseCharSearch repeats the last character search in the
	// opposite direction (",").
	MotionReverseCharSearch
)

// String returns the motion kind name.
func (k MotionKind) String() string {
	switch k {
	case MotionEnd:
		return "end"
	case MotionLine:
		return "line"
	case MotionNextWord:
		return "nextWord"
	case MotionNextBigWord:
		return "nextBigWord"
	case MotionNextWordEnd:
		return "nextWordEnd"
	case MotionNextBigWordEnd:
		return "nextBigWordEnd"
	case MotionPreviousWord:
		return "previousWord"
	case MotionPreviousBigWord:
		return "previousBigWord"
	case MotionRightUntil:
		return "rightUntil"
	case MotionRightBefore:
		return "rightBefore"
	case MotionLeftUntil:
		return "leftUntil"
	case MotionLeftBefore:
		return "leftBefore"
	case MotionStart:
		return "start"
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionReplayCharSearch:
		return "replayCharSearch"
	case MotionReverseCharSearch:
		return "reverseCharSearch"
	default:
		return fmt.Sprintf("MotionKind(%d)", k)
	}
}

// Motion is a parsed motion. Motions are immutable values; only the
// character-search kinds carry a payload.
type Motion struct {
	// Kind identifies the motion.
	Kind MotionKind

	// Char is the target character for the character-search motions.
	Char rune
}

// String returns a human-readable representation of the motion.
func (m Motion) String() string {
	if m.IsCharSearch() {
		return fmt.Sprintf("%s(%q)", m.Kind, m.Char)
	}
	return m.Kind.String()
}

// IsCharSearch returns true for the four character-seeking motions.
func (m Motion) IsCharSearch() bool {
	switch m.Kind {
	case MotionRightUntil, MotionRightBefore, MotionLeftUntil, MotionLeftBefore:
		return true
	default:
		return false
	}
}
