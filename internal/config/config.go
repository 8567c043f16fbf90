package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "VILINE_"

// Settings holds all editor configuration.
type Settings struct {
	Prompt    string          `toml:"prompt"`
	History   HistorySettings `toml:"history"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Hooks     HookSettings    `toml:"hooks"`
}

// HistorySettings configures command-line history.
type HistorySettings struct {
	// Path is the history file location. Empty keeps history in memory.
	Path string `toml:"path"`

	// Capacity bounds the number of entries kept.
	Capacity int `toml:"capacity"`
}

// ClipboardConfig configures cut-buffer behavior.
type ClipboardConfig struct {
	// UseSystem mirrors cuts into the OS clipboard when available.
	UseSystem bool `toml:"use_system"`
}

// HookSettings configures the Lua hook runtime.
type HookSettings struct {
	// InitScript is a Lua file run at startup. Empty disables hooks.
	InitScript string `toml:"init_script"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Prompt: "> ",
		History: HistorySettings{
			Capacity: 1000,
		},
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from a TOML file at path, then applies environment
// overrides. A missing file is not an error; defaults apply. An empty
// path skips the file entirely.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &s); err != nil {
				return Settings{}, &ParseError{
					Path:    path,
					Message: err.Error(),
					Err:     err,
				}
			}
		}
	}

	s.applyEnv()
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// applyEnv overlays VILINE_-prefixed environment variables.
func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "PROMPT"); ok {
		s.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_PATH"); ok {
		s.History.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_CAPACITY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.History.Capacity = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SYSTEM_CLIPBOARD"); ok {
		s.Clipboard.UseSystem = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "INIT_SCRIPT"); ok {
		s.Hooks.InitScript = v
	}
}

func (s *Settings) validate() error {
	if s.History.Capacity <= 0 {
		return fmt.Errorf("history capacity must be positive, got %d", s.History.Capacity)
	}
	return nil
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
