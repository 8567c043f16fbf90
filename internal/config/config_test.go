package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if s.Prompt != want.Prompt || s.History.Capacity != want.History.Capacity {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prompt != Default().Prompt {
		t.Errorf("expected default prompt, got %q", s.Prompt)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viline.toml")
	writeFile(t, path, `
prompt = ":: "

[history]
path = "/tmp/hist.jsonl"
capacity = 50

[clipboard]
use_system = true

[hooks]
init_script = "/tmp/init.lua"
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prompt != ":: " {
		t.Errorf("prompt: expected %q, got %q", ":: ", s.Prompt)
	}
	if s.History.Path != "/tmp/hist.jsonl" || s.History.Capacity != 50 {
		t.Errorf("history: got %+v", s.History)
	}
	if !s.Clipboard.UseSystem {
		t.Error("expected system clipboard enabled")
	}
	if s.Hooks.InitScript != "/tmp/init.lua" {
		t.Errorf("hooks: got %+v", s.Hooks)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viline.toml")
	writeFile(t, path, `prompt = "$ "`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prompt != "$ " {
		t.Errorf("expected overridden prompt, got %q", s.Prompt)
	}
	if s.History.Capacity != Default().History.Capacity {
		t.Errorf("expected default capacity, got %d", s.History.Capacity)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viline.toml")
	writeFile(t, path, "prompt = [broken")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != path {
		t.Errorf("expected path %q in error, got %q", path, perr.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viline.toml")
	writeFile(t, path, `prompt = "file "`)

	t.Setenv("VILINE_PROMPT", "env ")
	t.Setenv("VILINE_HISTORY_CAPACITY", "7")
	t.Setenv("VILINE_SYSTEM_CLIPBOARD", "on")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prompt != "env " {
		t.Errorf("expected env prompt, got %q", s.Prompt)
	}
	if s.History.Capacity != 7 {
		t.Errorf("expected capacity 7, got %d", s.History.Capacity)
	}
	if !s.Clipboard.UseSystem {
		t.Error("expected system clipboard enabled by env")
	}
}

func TestValidateRejectsNonPositiveCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viline.toml")
	writeFile(t, path, "[history]\ncapacity = -1\n")

	if _, err := Load(path); err == nil {
		t.Error("expected a validation error")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viline.toml")
	writeFile(t, path, `prompt = "one "`)

	var mu sync.Mutex
	var got []Settings
	w, err := Watch(path, func(s Settings) {
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, `prompt = "two "`)

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		var last Settings
		if n > 0 {
			last = got[n-1]
		}
		mu.Unlock()
		if n > 0 {
			if last.Prompt != "two " {
				t.Errorf("expected reloaded prompt %q, got %q", "two ", last.Prompt)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viline.toml")
	writeFile(t, path, `prompt = "x "`)

	w, err := Watch(path, func(Settings) {})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
