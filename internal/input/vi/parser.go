package vi

import "fmt"

// Status is the three-way outcome of a parse attempt. Keeping "no match"
// and "need more input" distinct lets the caller tell "try another grammar
// rule" apart from "wait for the next keystroke".
type Status uint8

const (
	// StatusNoMatch indicates the leading character identifies nothing
	// here. Nothing was consumed.
	StatusNoMatch Status = iota

	// StatusPending indicates a valid prefix that needs more keystrokes.
	StatusPending

	// StatusComplete indicates a fully resolved parse.
	StatusComplete
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNoMatch:
		return "noMatch"
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// ParseCommand consumes the minimal prefix of the input that identifies a
// normal-mode command. Single-character commands consume exactly one
// character; "r" additionally consumes its operand character. When the
// input ends right after "r", the trigger is consumed and the Incomplete
// sentinel is returned with StatusPending.
func ParseCommand(in *Input) (Command, Status) {
	r, ok := in.Peek()
	if !ok {
		return Command{}, StatusNoMatch
	}

	kind, ok := commandKeys[r]
	if !ok {
		return Command{}, StatusNoMatch
	}
	in.Next()

	if kind == CmdReplaceChar {
		operand, ok := in.Next()
		if !ok {
			return Command{Kind: CmdIncomplete}, StatusPending
		}
		return Command{Kind: CmdReplaceChar, Char: operand}, StatusComplete
	}

	return Command{Kind: kind}, StatusComplete
}

// commandKeys maps trigger characters to command kinds.
var commandKeys = map[rune]CommandKind{
	'd': CmdDelete,
	'p': CmdPasteAfter,
	'P': CmdPasteBefore,
	'i': CmdEnterViInsert,
	'a': CmdEnterViAppend,
	'u': CmdUndo,
	'c': CmdChange,
	'x': CmdDeleteChar,
	'r': CmdReplaceChar,
	's': CmdSubstituteCharWithInsert,
	'?': CmdHistorySearch,
	'C': CmdChangeToLineEnd,
	'D': CmdDeleteToEnd,
	'I': CmdPrependToStart,
	'A': CmdAppendToEnd,
	'S': CmdRewriteCurrentLine,
	'~': CmdSwitchcase,
	'.': CmdRepeatLastAction,
}

// ParseMotion consumes the minimal prefix of the input that identifies a
// motion. The character-search motions f/t/F/T consume their trigger plus
// one target character and report StatusPending if the target has not
// arrived yet. MotionLine is never parsed here; it is synthesized from
// operator doubling by Interpret.
func ParseMotion(in *Input) (Motion, Status) {
	r, ok := in.Peek()
	if !ok {
		return Motion{}, StatusNoMatch
	}

	if kind, ok := charSearchKeys[r]; ok {
		in.Next()
		target, ok := in.Next()
		if !ok {
			return Motion{}, StatusPending
		}
		return Motion{Kind: kind, Char: target}, StatusComplete
	}

	kind, ok := motionKeys[r]
	if !ok {
		return Motion{}, StatusNoMatch
	}
	in.Next()
	return Motion{Kind: kind}, StatusComplete
}

// motionKeys maps single-character motions to motion kinds.
var motionKeys = map[rune]MotionKind{
	'$': MotionEnd,
	'w': MotionNextWord,
	'W': MotionNextBigWord,
	'e': MotionNextWordEnd,
	'E': MotionNextBigWordEnd,
	'b': MotionPreviousWord,
	'B': MotionPreviousBigWord,
	'0': MotionStart,
	'h': MotionLeft,
	'l': MotionRight,
	'k': MotionUp,
	'j': MotionDown,
	';': MotionReplayCharSearch,
	',': MotionReverseCharSearch,
}

// charSearchKeys maps character-search triggers to motion kinds.
var charSearchKeys = map[rune]MotionKind{
	'f': MotionRightUntil,
	't': MotionRightBefore,
	'F': MotionLeftUntil,
	'T': MotionLeftBefore,
}
