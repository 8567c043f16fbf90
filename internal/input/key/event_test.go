package key

import "testing"

func TestRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)

	if !e.IsRune() || !e.IsChar() {
		t.Error("expected a printable rune event")
	}
	if e.IsModified() {
		t.Error("expected no modifiers")
	}
	if e.String() != "a" {
		t.Errorf("expected %q, got %q", "a", e.String())
	}
}

func TestShiftedRuneIsNotModified(t *testing.T) {
	// Shift is part of the character for rune events.
	e := NewRuneEvent('A', ModShift)
	if e.IsModified() {
		t.Error("shift alone must not count as modified for characters")
	}

	e = NewRuneEvent('a', ModCtrl)
	if !e.IsModified() {
		t.Error("expected ctrl to count as modified")
	}
}

func TestSpecialEvents(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		check func(Event) bool
		str   string
	}{
		{"escape", NewSpecialEvent(KeyEscape, ModNone), Event.IsEscape, "Escape"},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), Event.IsEnter, "Enter"},
		{"backspace", NewSpecialEvent(KeyBackspace, ModNone), Event.IsBackspace, "Backspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.event) {
				t.Errorf("predicate failed for %v", tt.event)
			}
			if !tt.event.Key.IsSpecial() {
				t.Error("expected a special key")
			}
			if got := tt.event.String(); got != tt.str {
				t.Errorf("expected %q, got %q", tt.str, got)
			}
		})
	}
}

func TestModifierString(t *testing.T) {
	m := ModCtrl.With(ModAlt)
	if m.String() != "Ctrl+Alt" {
		t.Errorf("expected %q, got %q", "Ctrl+Alt", m.String())
	}
	if ModNone.String() != "" {
		t.Errorf("expected empty string for ModNone")
	}
	if !m.HasCtrl() || !m.HasAlt() || m.HasShift() {
		t.Error("modifier predicates out of step with With()")
	}
}
