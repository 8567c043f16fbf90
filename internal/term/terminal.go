package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/viline/internal/editor"
	"github.com/dshills/viline/internal/input/key"
)

// Terminal paints a single-line editor onto a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	prompt string
}

// NewTerminal creates a terminal on the default screen.
func NewTerminal(prompt string) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, prompt), nil
}

// NewTerminalWithScreen creates a terminal on a caller-provided screen,
// typically a simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen, prompt string) *Terminal {
	return &Terminal{screen: screen, prompt: prompt}
}

// Init prepares the screen for drawing.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Shutdown restores the terminal state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// SetPrompt changes the prompt shown before the edit line.
func (t *Terminal) SetPrompt(prompt string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt = prompt
}

// Render paints the prompt and line on the top row and positions the
// cursor at the given byte offset into line. The cursor shape follows the
// editing mode: a bar while inserting, a block otherwise.
func (t *Terminal) Render(line string, cursor int, mode editor.Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()

	style := tcell.StyleDefault
	col := 0
	col = t.drawString(col, t.prompt, style.Bold(true))
	t.drawString(col, line, style)

	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	t.screen.ShowCursor(col+uniseg.StringWidth(line[:cursor]), 0)

	if mode == editor.ModeInsert {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	} else {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	t.screen.Show()
}

// drawString draws s on the top row starting at column x and returns the
// next free column. Wide characters advance by their display width.
func (t *Terminal) drawString(x int, s string, style tcell.Style) int {
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		t.screen.SetContent(x, 0, runes[0], runes[1:], style)
		x += width
	}
	return x
}

// PollKey blocks until a key event arrives and returns its translation.
// Resize events repaint implicitly and are skipped; the second result is
// false when the screen is shut down.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			return translateKey(e), true
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		case nil:
			return key.Event{}, false
		}
	}
}

// translateKey maps a tcell key event to an editor key event.
func translateKey(ev *tcell.EventKey) key.Event {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyCtrlC:
		return key.NewRuneEvent('c', mods.With(key.ModCtrl))
	case tcell.KeyCtrlD:
		return key.NewRuneEvent('d', mods.With(key.ModCtrl))
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}
