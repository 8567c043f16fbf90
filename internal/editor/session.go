package editor

import (
	"github.com/dshills/viline/internal/edit"
	"github.com/dshills/viline/internal/engine/clip"
	"github.com/dshills/viline/internal/engine/linebuffer"
	"github.com/dshills/viline/internal/input/key"
	"github.com/dshills/viline/internal/input/vi"
)

// Session is one interactive line-editing session.
type Session struct {
	buf   *linebuffer.Buffer
	clipb clip.Clipboard
	state *vi.State
	mode  Mode

	// Pending normal-mode keystrokes, re-parsed from the start on every
	// new key until a command resolves or the buffer is abandoned.
	pending []rune

	// lastOp groups consecutive character inserts into one undoable
	// change.
	lastOp edit.Op

	undoStack []snapshot
	redoStack []snapshot
}

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets the cut buffer implementation.
func WithClipboard(c clip.Clipboard) Option {
	return func(s *Session) {
		s.clipb = c
	}
}

// WithInitialLine seeds the buffer content.
func WithInitialLine(line string) Option {
	return func(s *Session) {
		s.buf = linebuffer.FromString(line)
	}
}

// NewSession creates a session in insert mode with an empty line.
func NewSession(opts ...Option) *Session {
	s := &Session{
		buf:   linebuffer.New(),
		clipb: clip.NewLocal(),
		state: vi.NewState(),
		mode:  ModeInsert,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Line returns the current buffer content.
func (s *Session) Line() string {
	return s.buf.String()
}

// InsertionPoint returns the byte offset of the cursor.
func (s *Session) InsertionPoint() int {
	return s.buf.InsertionPoint()
}

// Mode returns the current editing mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Pending returns the unresolved normal-mode keystrokes, for status
// display.
func (s *Session) Pending() string {
	return string(s.pending)
}

// State exposes the interpreter session state.
func (s *Session) State() *vi.State {
	return s.state
}

// Result reports the outcome of one handled key.
type Result struct {
	// Signals are the UI effects requested by the key, in order.
	Signals []edit.Signal

	// Accepted is true when Enter accepted the line; Line carries it.
	Accepted bool

	// Line is the accepted line content.
	Line string
}

// HandleKey processes one key event and returns its UI effects.
func (s *Session) HandleKey(ev key.Event) Result {
	if ev.IsEnter() {
		return s.acceptLine()
	}

	switch s.mode {
	case ModeNormal:
		return s.handleNormalKey(ev)
	default:
		return s.handleInsertKey(ev)
	}
}

// Reset clears the buffer and pending keys for a fresh line; the session
// memory (previous action, last char search) survives, as does the cut
// buffer.
func (s *Session) Reset() {
	s.buf.Clear()
	s.pending = nil
	s.mode = ModeInsert
	s.undoStack = s.undoStack[:0]
	s.redoStack = s.redoStack[:0]
}

// SetLine replaces the buffer content, placing the cursor at the end.
// History recall uses this to load an earlier line for editing.
func (s *Session) SetLine(line string) {
	s.saveUndo()
	s.buf.Set(line)
	s.buf.MoveToEnd()
	s.pending = nil
	s.lastOp = edit.OpNone
}

func (s *Session) acceptLine() Result {
	line := s.buf.String()
	s.Reset()
	return Result{Accepted: true, Line: line, Signals: []edit.Signal{edit.SignalRepaint}}
}

func (s *Session) handleInsertKey(ev key.Event) Result {
	switch {
	case ev.IsEscape():
		s.mode = ModeNormal
		s.pending = nil
		// Vi leaves the cursor on the last inserted character.
		s.buf.MoveLeft()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.IsBackspace():
		s.apply(edit.Backspace)
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyDelete:
		s.apply(edit.Delete)
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyLeft:
		s.buf.MoveLeft()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyRight:
		s.buf.MoveRight()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyHome:
		s.buf.MoveToStart()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyEnd:
		s.buf.MoveToEnd()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.IsChar() && !ev.IsModified():
		s.apply(edit.InsertChar(ev.Rune))
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}
	}

	return Result{}
}

func (s *Session) handleNormalKey(ev key.Event) Result {
	switch {
	case ev.IsEscape():
		s.pending = nil
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyLeft:
		s.buf.MoveLeft()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.Key == key.KeyRight:
		s.buf.MoveRight()
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case ev.IsRune() && ev.Rune == 'r' && ev.Modifiers.HasCtrl():
		s.apply(edit.Redo)
		return Result{Signals: []edit.Signal{edit.SignalRepaint}}

	case !ev.IsRune() || ev.IsModified():
		return Result{}
	}

	s.pending = append(s.pending, ev.Rune)

	in := vi.NewInput(s.pending)
	instrs, status := vi.Interpret(in, s.state)

	switch status {
	case vi.StatusPending:
		return Result{}

	case vi.StatusNoMatch:
		return s.tryBareMotion()
	}

	// Resolved. Determine the insert transition from the command that
	// led the sequence, then consume the pending buffer.
	cmd, _ := vi.ParseCommand(vi.NewInput(s.pending))
	s.pending = nil

	ev2 := s.execute(instrs)
	if !ev2.IsEmpty() {
		s.state.RecordAction(ev2)
	}

	signals := append([]edit.Signal(nil), ev2.Signals...)
	if cmd.EntersInsert() {
		s.mode = ModeInsert
	}
	if len(signals) == 0 {
		signals = []edit.Signal{edit.SignalRepaint}
	}
	return Result{Signals: signals}
}

// tryBareMotion handles a normal-mode keystroke sequence that is not a
// command: a bare motion moves the cursor. Anything else abandons the
// pending buffer.
func (s *Session) tryBareMotion() Result {
	in := vi.NewInput(s.pending)
	motion, status := vi.ParseMotion(in)

	switch status {
	case vi.StatusPending:
		return Result{}
	case vi.StatusNoMatch:
		s.pending = nil
		return Result{}
	}

	s.pending = nil
	s.applyMotion(motion)
	return Result{Signals: []edit.Signal{edit.SignalRepaint}}
}

// applyMotion moves the cursor along a bare motion.
func (s *Session) applyMotion(m vi.Motion) {
	switch m.Kind {
	case vi.MotionEnd:
		s.buf.MoveToEnd()
	case vi.MotionStart:
		s.buf.MoveToStart()
	case vi.MotionLeft:
		s.buf.MoveLeft()
	case vi.MotionRight:
		s.buf.MoveRight()
	case vi.MotionNextWord:
		s.buf.SetInsertionPoint(s.buf.WordRightStartIndex())
	case vi.MotionNextBigWord:
		s.buf.SetInsertionPoint(s.buf.BigWordRightStartIndex())
	case vi.MotionNextWordEnd:
		s.buf.SetInsertionPoint(s.buf.WordRightEndIndex())
	case vi.MotionNextBigWordEnd:
		s.buf.SetInsertionPoint(s.buf.BigWordRightEndIndex())
	case vi.MotionPreviousWord:
		s.buf.SetInsertionPoint(s.buf.WordLeftIndex())
	case vi.MotionPreviousBigWord:
		s.buf.SetInsertionPoint(s.buf.BigWordLeftIndex())
	case vi.MotionRightUntil:
		if idx, ok := s.buf.FindCharRight(m.Char); ok {
			s.buf.SetInsertionPoint(idx)
		}
	case vi.MotionRightBefore:
		if idx, ok := s.buf.FindCharRight(m.Char); ok {
			s.buf.SetInsertionPoint(idx)
			s.buf.MoveLeft()
		}
	case vi.MotionLeftUntil:
		if idx, ok := s.buf.FindCharLeft(m.Char); ok {
			s.buf.SetInsertionPoint(idx)
		}
	case vi.MotionLeftBefore:
		if idx, ok := s.buf.FindCharLeft(m.Char); ok {
			s.buf.SetInsertionPoint(idx)
			s.buf.MoveRight()
		}
	}
	// Vertical and replay motions have no bare-movement meaning on a
	// single line.
}
