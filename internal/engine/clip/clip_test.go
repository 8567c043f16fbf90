package clip

import "testing"

func TestLocalClipboard(t *testing.T) {
	c := NewLocal()

	if content, mode := c.Get(); content != "" || mode != ModeNormal {
		t.Fatalf("expected an empty normal clipboard, got %q/%v", content, mode)
	}

	c.Set("hello", ModeLines)
	content, mode := c.Get()
	if content != "hello" {
		t.Errorf("expected %q, got %q", "hello", content)
	}
	if mode != ModeLines {
		t.Errorf("expected ModeLines, got %v", mode)
	}
	if c.Len() != 5 {
		t.Errorf("expected length 5, got %d", c.Len())
	}

	c.Clear()
	if content, mode := c.Get(); content != "" || mode != ModeNormal {
		t.Errorf("expected cleared clipboard, got %q/%v", content, mode)
	}
}

func TestLocalClipboardOverwrite(t *testing.T) {
	c := NewLocal()
	c.Set("first", ModeNormal)
	c.Set("second", ModeLines)

	content, mode := c.Get()
	if content != "second" || mode != ModeLines {
		t.Errorf("expected the last set to win, got %q/%v", content, mode)
	}
}

func TestDefaultNeverNil(t *testing.T) {
	// Default must always hand back a usable clipboard, with or without a
	// reachable system clipboard.
	c := Default()
	if c == nil {
		t.Fatal("expected a clipboard")
	}
	c.Set("x", ModeNormal)
	if content, _ := c.Get(); content == "" {
		// A system clipboard in a headless environment may be flaky; only
		// the local path is asserted strictly.
		if _, isLocal := c.(*Local); isLocal {
			t.Error("local clipboard dropped content")
		}
	}
}
