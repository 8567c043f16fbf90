// Package term renders the prompt and edit line on a terminal screen and
// translates terminal key events into editor key events.
package term
