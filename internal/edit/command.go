package edit

import "fmt"

// Op identifies a buffer-mutation or cursor-movement primitive.
type Op uint8

const (
	// OpNone represents no operation.
	OpNone Op = iota

	// Insertion and single-character edits
	OpInsertChar
	OpBackspace
	OpDelete
	OpCutChar
	OpReplaceChar
	OpSwitchcaseChar

	// Undo
	OpUndo
	OpRedo

	// Cursor movement
	OpMoveLeft
	OpMoveRight
	OpMoveToStart
	OpMoveToEnd
	OpMoveToLineStart
	OpMoveToLineEnd

	// Line-span cuts and clears
	OpCutToLineEnd
	OpCutCurrentLine
	OpCutFromLineStart
	OpClearToLineEnd

	// Word cuts
	OpCutWordLeft
	OpCutBigWordLeft
	OpCutWordRight
	OpCutBigWordRight
	OpCutWordRightToNext
	OpCutBigWordRightToNext

	// Character-search cuts
	OpCutRightUntil
	OpCutRightBefore
	OpCutLeftUntil
	OpCutLeftBefore

	// Clipboard
	OpPasteCutBufferAfter
	OpPasteCutBufferBefore
)

// String returns the op name.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpInsertChar:
		return "insertChar"
	case OpBackspace:
		return "backspace"
	case OpDelete:
		return "delete"
	case OpCutChar:
		return "cutChar"
	case OpReplaceChar:
		return "replaceChar"
	case OpSwitchcaseChar:
		return "switchcaseChar"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	case OpMoveLeft:
		return "moveLeft"
	case OpMoveRight:
		return "moveRight"
	case OpMoveToStart:
		return "moveToStart"
	case OpMoveToEnd:
		return "moveToEnd"
	case OpMoveToLineStart:
		return "moveToLineStart"
	case OpMoveToLineEnd:
		return "moveToLineEnd"
	case OpCutToLineEnd:
		return "cutToLineEnd"
	case OpCutCurrentLine:
		return "cutCurrentLine"
	case OpCutFromLineStart:
		return "cutFromLineStart"
	case OpClearToLineEnd:
		return "clearToLineEnd"
	case OpCutWordLeft:
		return "cutWordLeft"
	case OpCutBigWordLeft:
		return "cutBigWordLeft"
	case OpCutWordRight:
		return "cutWordRight"
	case OpCutBigWordRight:
		return "cutBigWordRight"
	case OpCutWordRightToNext:
		return "cutWordRightToNext"
	case OpCutBigWordRightToNext:
		return "cutBigWordRightToNext"
	case OpCutRightUntil:
		return "cutRightUntil"
	case OpCutRightBefore:
		return "cutRightBefore"
	case OpCutLeftUntil:
		return "cutLeftUntil"
	case OpCutLeftBefore:
		return "cutLeftBefore"
	case OpPasteCutBufferAfter:
		return "pasteCutBufferAfter"
	case OpPasteCutBufferBefore:
		return "pasteCutBufferBefore"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Command is a single instruction for the editing engine: an op plus the
// arguments that op needs. Commands are immutable values.
type Command struct {
	// Op identifies the primitive to execute.
	Op Op

	// Char is the operand character for OpInsertChar, OpReplaceChar and the
	// character-search cut ops.
	Char rune

	// Select extends the selection during movement ops when true.
	Select bool
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	switch {
	case c.HasChar():
		return fmt.Sprintf("%s(%q)", c.Op, c.Char)
	case c.isMove():
		return fmt.Sprintf("%s(select=%t)", c.Op, c.Select)
	default:
		return c.Op.String()
	}
}

// HasChar returns true if this command's op carries a character operand.
func (c Command) HasChar() bool {
	switch c.Op {
	case OpInsertChar, OpReplaceChar,
		OpCutRightUntil, OpCutRightBefore, OpCutLeftUntil, OpCutLeftBefore:
		return true
	default:
		return false
	}
}

// IsCut returns true if this command places text in the cut buffer.
func (c Command) IsCut() bool {
	switch c.Op {
	case OpCutChar, OpCutToLineEnd, OpCutCurrentLine, OpCutFromLineStart,
		OpCutWordLeft, OpCutBigWordLeft, OpCutWordRight, OpCutBigWordRight,
		OpCutWordRightToNext, OpCutBigWordRightToNext,
		OpCutRightUntil, OpCutRightBefore, OpCutLeftUntil, OpCutLeftBefore:
		return true
	default:
		return false
	}
}

func (c Command) isMove() bool {
	switch c.Op {
	case OpMoveLeft, OpMoveRight, OpMoveToStart, OpMoveToEnd,
		OpMoveToLineStart, OpMoveToLineEnd:
		return true
	default:
		return false
	}
}

// Plain no-argument commands.
var (
	Backspace            = Command{Op: OpBackspace}
	Delete               = Command{Op: OpDelete}
	CutChar              = Command{Op: OpCutChar}
	SwitchcaseChar       = Command{Op: OpSwitchcaseChar}
	Undo                 = Command{Op: OpUndo}
	Redo                 = Command{Op: OpRedo}
	CutToLineEnd         = Command{Op: OpCutToLineEnd}
	CutCurrentLine       = Command{Op: OpCutCurrentLine}
	CutFromLineStart     = Command{Op: OpCutFromLineStart}
	ClearToLineEnd       = Command{Op: OpClearToLineEnd}
	CutWordLeft          = Command{Op: OpCutWordLeft}
	CutBigWordLeft       = Command{Op: OpCutBigWordLeft}
	CutWordRight         = Command{Op: OpCutWordRight}
	CutBigWordRight      = Command{Op: OpCutBigWordRight}
	CutWordRightToNext   = Command{Op: OpCutWordRightToNext}
	CutBigWordRightToNext = Command{Op: OpCutBigWordRightToNext}
	PasteCutBufferAfter  = Command{Op: OpPasteCutBufferAfter}
	PasteCutBufferBefore = Command{Op: OpPasteCutBufferBefore}
)

// InsertChar creates a command inserting c at the insertion point.
func InsertChar(c rune) Command {
	return Command{Op: OpInsertChar, Char: c}
}

// ReplaceChar creates a command replacing the character under the cursor.
func ReplaceChar(c rune) Command {
	return Command{Op: OpReplaceChar, Char: c}
}

// CutRightUntil creates a cut through the next occurrence of c, inclusive.
func CutRightUntil(c rune) Command {
	return Command{Op: OpCutRightUntil, Char: c}
}

// CutRightBefore creates a cut up to the next occurrence of c, exclusive.
func CutRightBefore(c rune) Command {
	return Command{Op: OpCutRightBefore, Char: c}
}

// CutLeftUntil creates a cut back through the previous occurrence of c,
// inclusive.
func CutLeftUntil(c rune) Command {
	return Command{Op: OpCutLeftUntil, Char: c}
}

// CutLeftBefore creates a cut back to the previous occurrence of c,
// exclusive.
func CutLeftBefore(c rune) Command {
	return Command{Op: OpCutLeftBefore, Char: c}
}

// MoveLeft creates a move-left command.
func MoveLeft(sel bool) Command {
	return Command{Op: OpMoveLeft, Select: sel}
}

// MoveRight creates a move-right command.
func MoveRight(sel bool) Command {
	return Command{Op: OpMoveRight, Select: sel}
}

// MoveToStart creates a move to the start of the buffer.
func MoveToStart(sel bool) Command {
	return Command{Op: OpMoveToStart, Select: sel}
}

// MoveToEnd creates a move to the end of the buffer.
func MoveToEnd(sel bool) Command {
	return Command{Op: OpMoveToEnd, Select: sel}
}

// MoveToLineStart creates a move to the start of the current line.
func MoveToLineStart(sel bool) Command {
	return Command{Op: OpMoveToLineStart, Select: sel}
}

// MoveToLineEnd creates a move to the end of the current line.
func MoveToLineEnd(sel bool) Command {
	return Command{Op: OpMoveToLineEnd, Select: sel}
}
