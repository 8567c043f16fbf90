// Package editor runs the edit loop of a Vi-mode line-editing session.
//
// A Session owns the line buffer, the cut buffer, the undo stack and the
// interpreter's session state. Keys arrive one at a time via HandleKey;
// in insert mode printable characters go straight into the buffer, in
// normal mode the pending keystrokes are re-parsed from the start against
// the vi grammar until a command resolves. Resolved instruction sequences
// are applied here and the resulting action is recorded for the repeat
// command.
//
// The session performs no I/O and is not safe for concurrent use; it is
// driven synchronously by one key-handling loop.
package editor
