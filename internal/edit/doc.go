// Package edit defines the instruction vocabulary shared between the input
// layer and the editing engine.
//
// The input layer (see internal/input/vi) never touches the line buffer
// directly. It resolves keystrokes into values of this package: Command for
// buffer mutations and cursor movement, Signal for UI-level effects such as
// repainting or opening the history search. The executor (see
// internal/editor) consumes these values and applies them.
//
// Commands are plain values. A Command carries an Op plus the arguments that
// op needs (an operand character for searches and replacement, a Select flag
// for movements). Commands have no behavior of their own; all semantics live
// in the executor and the line buffer.
package edit
