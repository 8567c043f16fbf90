package vi

import "fmt"

// CommandKind identifies a normal-mode command.
type CommandKind uint8

const (
	// CmdIncomplete is the sentinel for a command that needs more
	// keystrokes to finish (e.g. "r" with no operand yet).
	CmdIncomplete CommandKind = iota

	// CmdDelete is the "d" operator; it requires a motion.
	CmdDelete

	// CmdDeleteChar deletes the character under the cursor ("x").
	CmdDeleteChar

	// CmdReplaceChar replaces the character under the cursor ("r<char>").
	CmdReplaceChar

	// CmdSubstituteCharWithInsert deletes the character under the cursor
	// and enters insert mode ("s").
	CmdSubstituteCharWithInsert

	// CmdPasteAfter pastes the cut buffer after the cursor ("p").
	CmdPasteAfter

	// CmdPasteBefore pastes the cut buffer before the cursor ("P").
	CmdPasteBefore

	// CmdEnterViAppend enters insert mode after the cursor ("a").
	CmdEnterViAppend

	// CmdEnterViInsert enters insert mode at the cursor ("i").
	CmdEnterViInsert

	// CmdUndo undoes the last edit ("u").
	CmdUndo

	// CmdChangeToLineEnd clears to the end of the line and enters insert
	// mode ("C").
	CmdChangeToLineEnd

	// CmdDeleteToEnd cuts to the end of the line ("D").
	CmdDeleteToEnd

	// CmdAppendToEnd enters insert mode at the end of the line ("A").
	CmdAppendToEnd

	// CmdPrependToStart enters insert mode at the start of the line ("I").
	CmdPrependToStart

	// CmdRewriteCurrentLine cuts the whole current line ("S").
	CmdRewriteCurrentLine

	// CmdChange is the "c" operator; it requires a motion.
	CmdChange

	// CmdHistorySearch opens the history search ("?").
	CmdHistorySearch

	// CmdSwitchcase toggles the case of the character under the cursor
	// ("~").
	CmdSwitchcase

	// CmdRepeatLastAction replays the previously resolved action (".").
	CmdRepeatLastAction
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case CmdIncomplete:
		return "incomplete"
	case CmdDelete:
		return "delete"
	case CmdDeleteChar:
		return "deleteChar"
	case CmdReplaceChar:
		return "replaceChar"
	case CmdSubstituteCharWithInsert:
		return "substituteCharWithInsert"
	case CmdPasteAfter:
		return "pasteAfter"
	case CmdPasteBefore:
		return "pasteBefore"
	case CmdEnterViAppend:
		return "enterViAppend"
	case CmdEnterViInsert:
		return "enterViInsert"
	case CmdUndo:
		return "undo"
	case CmdChangeToLineEnd:
		return "changeToLineEnd"
	case CmdDeleteToEnd:
		return "deleteToEnd"
	case CmdAppendToEnd:
		return "appendToEnd"
	case CmdPrependToStart:
		return "prependToStart"
	case CmdRewriteCurrentLine:
		return "rewriteCurrentLine"
	case CmdChange:
		return "change"
	case CmdHistorySearch:
		return "historySearch"
	case CmdSwitchcase:
		return "switchcase"
	case CmdRepeatLastAction:
		return "repeatLastAction"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// Command is a parsed normal-mode command. Commands are immutable values;
// only CmdReplaceChar carries a payload.
type Command struct {
	// Kind identifies the command.
	Kind CommandKind

	// Char is the operand character for CmdReplaceChar.
	Char rune
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	if c.Kind == CmdReplaceChar {
		return fmt.Sprintf("%s(%q)", c.Kind, c.Char)
	}
	return c.Kind.String()
}

// RequiresMotion returns true if the command cannot resolve alone and must
// be paired with a motion.
func (c Command) RequiresMotion() bool {
	return c.Kind == CmdDelete || c.Kind == CmdChange
}

// EntersInsert returns true if resolving the command leaves the session in
// insert mode.
func (c Command) EntersInsert() bool {
	switch c.Kind {
	case CmdEnterViInsert, CmdEnterViAppend, CmdAppendToEnd, CmdPrependToStart,
		CmdSubstituteCharWithInsert, CmdChangeToLineEnd, CmdRewriteCurrentLine,
		CmdChange:
		return true
	default:
		return false
	}
}

// WholeLineChar returns the trigger character whose doubling means "apply
// to the whole current line" (dd, cc). ok is false for commands that have
// no line-wise doubling.
func (c Command) WholeLineChar() (trigger rune, ok bool) {
	switch c.Kind {
	case CmdDelete:
		return 'd', true
	case CmdChange:
		return 'c', true
	default:
		return 0, false
	}
}
