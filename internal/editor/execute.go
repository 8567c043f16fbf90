package editor

import (
	"unicode/utf8"

	"github.com/dshills/viline/internal/edit"
	"github.com/dshills/viline/internal/engine/clip"
	"github.com/dshills/viline/internal/input/vi"
)

// snapshot captures the buffer for undo.
type snapshot struct {
	line string
	pos  int
}

// execute applies an instruction sequence and returns the resolved action
// it amounted to. Replayed actions are flattened into their commands so
// that repeating a repeat stays well defined.
func (s *Session) execute(instrs []vi.Instruction) edit.Event {
	var ev edit.Event

	for _, instr := range instrs {
		switch instr.Kind {
		case vi.InstrEdit:
			s.apply(instr.Edit)
			ev.Commands = append(ev.Commands, instr.Edit)

		case vi.InstrSignal:
			ev.Signals = append(ev.Signals, instr.Signal)

		case vi.InstrReplay:
			for _, cmd := range instr.Replay.Commands {
				s.apply(cmd)
				ev.Commands = append(ev.Commands, cmd)
			}
			ev.Signals = append(ev.Signals, instr.Replay.Signals...)
		}
		// The incomplete marker never reaches the executor: Interpret
		// reports pending status instead of resolving.
	}
	return ev
}

// apply executes a single edit command against the buffer and cut buffer.
// Consecutive character inserts collapse into one undoable change.
func (s *Session) apply(cmd edit.Command) {
	if mutates(cmd.Op) && !(cmd.Op == edit.OpInsertChar && s.lastOp == edit.OpInsertChar) {
		s.saveUndo()
	}

	switch cmd.Op {
	case edit.OpInsertChar:
		s.buf.InsertChar(cmd.Char)

	case edit.OpBackspace:
		s.buf.DeleteRange(s.buf.GraphemeLeftIndex(), s.buf.InsertionPoint())

	case edit.OpDelete:
		s.buf.DeleteRange(s.buf.InsertionPoint(), s.buf.GraphemeRightIndex())

	case edit.OpCutChar:
		s.cutRange(s.buf.InsertionPoint(), s.buf.GraphemeRightIndex(), clip.ModeNormal)

	case edit.OpReplaceChar:
		s.buf.ReplaceChar(cmd.Char)

	case edit.OpSwitchcaseChar:
		s.buf.SwitchcaseChar()

	case edit.OpUndo:
		s.undo()

	case edit.OpRedo:
		s.redo()

	case edit.OpMoveLeft:
		s.buf.MoveLeft()

	case edit.OpMoveRight:
		s.buf.MoveRight()

	case edit.OpMoveToStart, edit.OpMoveToLineStart:
		s.buf.MoveToStart()

	case edit.OpMoveToEnd, edit.OpMoveToLineEnd:
		s.buf.MoveToEnd()

	case edit.OpCutToLineEnd:
		s.cutRange(s.buf.InsertionPoint(), s.buf.Len(), clip.ModeNormal)

	case edit.OpCutCurrentLine:
		s.cutRange(0, s.buf.Len(), clip.ModeLines)

	case edit.OpCutFromLineStart:
		s.cutRange(0, s.buf.InsertionPoint(), clip.ModeNormal)

	case edit.OpClearToLineEnd:
		s.buf.DeleteRange(s.buf.InsertionPoint(), s.buf.Len())

	case edit.OpCutWordLeft:
		s.cutRange(s.buf.WordLeftIndex(), s.buf.InsertionPoint(), clip.ModeNormal)

	case edit.OpCutBigWordLeft:
		s.cutRange(s.buf.BigWordLeftIndex(), s.buf.InsertionPoint(), clip.ModeNormal)

	case edit.OpCutWordRight:
		s.cutRange(s.buf.InsertionPoint(), s.buf.WordRightEndIndex(), clip.ModeNormal)

	case edit.OpCutBigWordRight:
		s.cutRange(s.buf.InsertionPoint(), s.buf.BigWordRightEndIndex(), clip.ModeNormal)

	case edit.OpCutWordRightToNext:
		s.cutRange(s.buf.InsertionPoint(), s.buf.WordRightStartIndex(), clip.ModeNormal)

	case edit.OpCutBigWordRightToNext:
		s.cutRange(s.buf.InsertionPoint(), s.buf.BigWordRightStartIndex(), clip.ModeNormal)

	case edit.OpCutRightUntil:
		if idx, ok := s.buf.FindCharRight(cmd.Char); ok {
			s.cutRange(s.buf.InsertionPoint(), idx+utf8.RuneLen(cmd.Char), clip.ModeNormal)
		}

	case edit.OpCutRightBefore:
		if idx, ok := s.buf.FindCharRight(cmd.Char); ok {
			s.cutRange(s.buf.InsertionPoint(), idx, clip.ModeNormal)
		}

	case edit.OpCutLeftUntil:
		if idx, ok := s.buf.FindCharLeft(cmd.Char); ok {
			s.cutRange(idx, s.buf.InsertionPoint(), clip.ModeNormal)
		}

	case edit.OpCutLeftBefore:
		if idx, ok := s.buf.FindCharLeft(cmd.Char); ok {
			s.cutRange(idx+utf8.RuneLen(cmd.Char), s.buf.InsertionPoint(), clip.ModeNormal)
		}

	case edit.OpPasteCutBufferAfter:
		s.paste(true)

	case edit.OpPasteCutBufferBefore:
		s.paste(false)
	}

	s.lastOp = cmd.Op
}

// cutRange removes [start, end) and stores the removed text in the cut
// buffer. Empty ranges leave the cut buffer alone.
func (s *Session) cutRange(start, end int, mode clip.Mode) {
	removed := s.buf.DeleteRange(start, end)
	if removed != "" {
		s.clipb.Set(removed, mode)
	}
}

// paste inserts the cut buffer after or before the cursor, leaving the
// cursor on the last pasted grapheme.
func (s *Session) paste(after bool) {
	content, _ := s.clipb.Get()
	if content == "" {
		return
	}
	if after {
		s.buf.SetInsertionPoint(s.buf.GraphemeRightIndex())
	}
	s.buf.InsertString(content)
	s.buf.MoveLeft()
}

func (s *Session) capture() snapshot {
	return snapshot{line: s.buf.String(), pos: s.buf.InsertionPoint()}
}

func (s *Session) restore(snap snapshot) {
	s.buf.Set(snap.line)
	s.buf.SetInsertionPoint(snap.pos)
}

func (s *Session) saveUndo() {
	s.undoStack = append(s.undoStack, s.capture())
	s.redoStack = s.redoStack[:0]
}

func (s *Session) undo() {
	if len(s.undoStack) == 0 {
		return
	}
	s.redoStack = append(s.redoStack, s.capture())

	last := len(s.undoStack) - 1
	s.restore(s.undoStack[last])
	s.undoStack = s.undoStack[:last]
}

func (s *Session) redo() {
	if len(s.redoStack) == 0 {
		return
	}
	s.undoStack = append(s.undoStack, s.capture())

	last := len(s.redoStack) - 1
	s.restore(s.redoStack[last])
	s.redoStack = s.redoStack[:last]
}

// mutates reports whether an op changes the buffer content.
func mutates(op edit.Op) bool {
	switch op {
	case edit.OpNone, edit.OpUndo, edit.OpRedo,
		edit.OpMoveLeft, edit.OpMoveRight, edit.OpMoveToStart, edit.OpMoveToEnd,
		edit.OpMoveToLineStart, edit.OpMoveToLineEnd:
		return false
	default:
		return true
	}
}
