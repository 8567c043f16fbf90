package app

import "errors"

// ErrQuit signals a clean user-requested exit.
var ErrQuit = errors.New("app: quit")
