package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dshills/viline/internal/config"
	"github.com/dshills/viline/internal/edit"
	"github.com/dshills/viline/internal/editor"
	"github.com/dshills/viline/internal/engine/clip"
	"github.com/dshills/viline/internal/history"
	"github.com/dshills/viline/internal/plugin/luahook"
	"github.com/dshills/viline/internal/term"
)

// Options configures application startup.
type Options struct {
	// ConfigPath locates the settings file. Empty uses defaults.
	ConfigPath string

	// HistoryPath overrides the configured history file location.
	HistoryPath string

	// Output receives accepted lines. Defaults to stdout.
	Output io.Writer
}

// App owns the editor session and its supporting services.
type App struct {
	mu       sync.Mutex
	settings config.Settings
	session  *editor.Session
	hist     *history.Store
	hooks    *luahook.Runtime
	terminal *term.Terminal
	watcher  *config.Watcher
	out      io.Writer
	shutdown sync.Once
}

// New loads configuration and builds the application services.
func New(opts Options) (*App, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if opts.HistoryPath != "" {
		settings.History.Path = opts.HistoryPath
	}

	histOpts := []history.Option{history.WithCapacity(settings.History.Capacity)}
	if settings.History.Path != "" {
		histOpts = append(histOpts, history.WithFile(settings.History.Path))
	}
	hist, err := history.New(histOpts...)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}

	var hooks *luahook.Runtime
	if settings.Hooks.InitScript != "" {
		hooks = luahook.NewRuntime()
		if err := hooks.LoadScript(settings.Hooks.InitScript); err != nil {
			hooks.Close()
			hist.Close()
			return nil, err
		}
	}

	clipb := clip.Clipboard(clip.NewLocal())
	if settings.Clipboard.UseSystem {
		clipb = clip.Default()
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	a := &App{
		settings: settings,
		session:  editor.NewSession(editor.WithClipboard(clipb)),
		hist:     hist,
		hooks:    hooks,
		out:      out,
	}

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, a.applySettings)
		if err == nil {
			a.watcher = w
		}
		// A failed watch leaves live reload off; startup settings stand.
	}
	return a, nil
}

// applySettings installs freshly reloaded settings. Only settings that
// can change mid-session take effect; history and hook wiring stay as
// they were at startup.
func (a *App) applySettings(s config.Settings) {
	a.mu.Lock()
	a.settings.Prompt = s.Prompt
	terminal := a.terminal
	prompt := s.Prompt
	a.mu.Unlock()

	if terminal != nil {
		terminal.SetPrompt(prompt)
	}
}

// SetTerminal attaches the terminal front end used by Run.
func (a *App) SetTerminal(t *term.Terminal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.terminal = t
}

// Prompt returns the active prompt string.
func (a *App) Prompt() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.Prompt
}

// Run drives the edit loop until the user quits. Ctrl-D on an empty line
// exits; Ctrl-C abandons the current line.
func (a *App) Run() error {
	a.mu.Lock()
	terminal := a.terminal
	a.mu.Unlock()
	if terminal == nil {
		return fmt.Errorf("no terminal attached")
	}

	if err := terminal.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer terminal.Shutdown()

	for {
		terminal.Render(a.session.Line(), a.session.InsertionPoint(), a.session.Mode())

		ev, ok := terminal.PollKey()
		if !ok {
			return nil
		}

		if ev.Modifiers.HasCtrl() && ev.IsRune() {
			switch ev.Rune {
			case 'd':
				if a.session.Line() == "" {
					return ErrQuit
				}
				continue
			case 'c':
				a.session.Reset()
				continue
			}
		}

		res := a.session.HandleKey(ev)
		if res.Accepted {
			if err := a.acceptLine(res.Line); err != nil {
				return err
			}
			continue
		}
		for _, sig := range res.Signals {
			if sig == edit.SignalSearchHistory {
				a.recallHistory()
			}
		}
	}
}

// acceptLine runs the accept hooks, records the line in history, and
// writes it to the output.
func (a *App) acceptLine(line string) error {
	if a.hooks != nil {
		rewritten, err := a.hooks.OnAcceptLine(line)
		if err != nil {
			return err
		}
		line = rewritten
	}

	keep := true
	if a.hooks != nil {
		var err error
		keep, err = a.hooks.FilterHistory(line)
		if err != nil {
			return err
		}
	}
	if keep {
		if _, err := a.hist.Append(line); err != nil && !errors.Is(err, history.ErrEmptyLine) {
			return err
		}
	}

	if _, err := fmt.Fprintln(a.out, line); err != nil {
		return err
	}
	return nil
}

// recallHistory loads the most recent history entry containing the
// current line content into the buffer. No match leaves the line alone.
func (a *App) recallHistory() {
	entry, ok := a.hist.Newest(a.session.Line())
	if !ok {
		return
	}
	a.session.SetLine(entry.CommandLine)
}

// History exposes the history store.
func (a *App) History() *history.Store {
	return a.hist
}

// Session exposes the editor session.
func (a *App) Session() *editor.Session {
	return a.session
}

// Shutdown releases all services. It is safe to call more than once.
func (a *App) Shutdown() {
	a.shutdown.Do(func() {
		if a.watcher != nil {
			a.watcher.Close()
		}
		if a.hooks != nil {
			a.hooks.Close()
		}
		a.hist.Close()
	})
}
