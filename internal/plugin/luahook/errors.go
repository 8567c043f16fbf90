package luahook

import "errors"

var (
	// ErrClosed is returned when calling into a closed runtime.
	ErrClosed = errors.New("luahook: runtime is closed")

	// ErrNotAFunction is returned when a hook global is defined but is
	// not callable.
	ErrNotAFunction = errors.New("luahook: hook is not a function")
)
