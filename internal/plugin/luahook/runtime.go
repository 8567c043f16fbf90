package luahook

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Hook global names looked up in the script environment.
const (
	// AcceptLineHook may rewrite an accepted line. Signature:
	// function(line) -> string.
	AcceptLineHook = "viline_accept_line"

	// HistoryFilterHook decides whether a line enters history. Signature:
	// function(line) -> bool.
	HistoryFilterHook = "viline_history_filter"
)

// Runtime hosts a sandboxed Lua state for hook execution.
//
// gopher-lua's LState is not goroutine-safe; the internal mutex serializes
// access from Go, but hook execution itself is single-threaded.
type Runtime struct {
	mu     sync.Mutex
	l      *lua.LState
	closed bool
}

// NewRuntime creates a runtime with only the safe Lua standard libraries:
// base, table, string, and math. io, os, debug, and package stay closed.
func NewRuntime() *Runtime {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)
	lua.OpenMath(l)
	return &Runtime{l: l}
}

// LoadScript executes a hook script file, registering its globals.
func (r *Runtime) LoadScript(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.protect(func() error { return r.l.DoFile(path) }); err != nil {
		return fmt.Errorf("loading hook script %s: %w", path, err)
	}
	return nil
}

// LoadString executes hook code from a string.
func (r *Runtime) LoadString(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.protect(func() error { return r.l.DoString(code) }); err != nil {
		return fmt.Errorf("loading hook code: %w", err)
	}
	return nil
}

// OnAcceptLine runs the accept-line hook, returning the possibly rewritten
// line. When the hook is undefined or returns a non-string, the original
// line is returned unchanged.
func (r *Runtime) OnAcceptLine(line string) (string, error) {
	ret, ok, err := r.call(AcceptLineHook, lua.LString(line))
	if err != nil || !ok {
		return line, err
	}
	if s, isStr := ret.(lua.LString); isStr {
		return string(s), nil
	}
	return line, nil
}

// FilterHistory runs the history-filter hook. Lines are recorded unless
// the hook is defined and returns false.
func (r *Runtime) FilterHistory(line string) (bool, error) {
	ret, ok, err := r.call(HistoryFilterHook, lua.LString(line))
	if err != nil || !ok {
		return true, err
	}
	return lua.LVAsBool(ret), nil
}

// call invokes a global hook function. The bool result reports whether
// the hook was defined.
func (r *Runtime) call(name string, args ...lua.LValue) (lua.LValue, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return lua.LNil, false, ErrClosed
	}

	fn := r.l.GetGlobal(name)
	if fn == lua.LNil {
		return lua.LNil, false, nil
	}
	if fn.Type() != lua.LTFunction {
		return lua.LNil, false, fmt.Errorf("%w: %s is %s", ErrNotAFunction, name, fn.Type())
	}

	var ret lua.LValue = lua.LNil
	err := r.protect(func() error {
		if err := r.l.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, args...); err != nil {
			return err
		}
		ret = r.l.Get(-1)
		r.l.Pop(1)
		return nil
	})
	if err != nil {
		return lua.LNil, true, fmt.Errorf("hook %s: %w", name, err)
	}
	return ret, true, nil
}

// protect runs fn with panic recovery; gopher-lua panics on some internal
// failures instead of returning errors.
func (r *Runtime) protect(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}

// Close releases the Lua state. A closed runtime rejects further calls.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.l.Close()
}
