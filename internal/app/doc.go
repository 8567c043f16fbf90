// Package app wires the editor session, configuration, history, hooks,
// and terminal into a runnable line editor.
package app
