// Package vi implements the normal-mode command interpreter of the line
// editor: it turns buffered keystrokes into edit instructions and UI
// signals, composing commands with motions the way Vi's grammar does.
//
// # Grammar
//
// The slice of the Vi grammar handled here is:
//
//	command                      (single-key: x, p, u, ~, ...)
//	command operand              (r<char>)
//	operator motion              (dw, c$, dfx, ...)
//	operator operator            (line-wise doubling: dd, cc)
//
// Counts, registers, marks, macros and visual mode are out of scope.
//
// # Parsing
//
// Parsing is stateless: the caller re-parses the full pending keystroke
// buffer from its start whenever a new keystroke arrives. Every parse
// entry point reports a three-way Status:
//
//   - StatusNoMatch: the leading character identifies nothing here; the
//     caller falls back to another grammar rule. Nothing was consumed.
//   - StatusPending: the prefix is a valid but incomplete command; the
//     caller waits for more keystrokes. There is no timeout.
//   - StatusComplete: a command resolved; the returned instructions are
//     ready for the executor.
//
// # Session state
//
// State carries the per-session memory: the last resolved action (replayed
// by ".") and the last character search (replayed by ";" and ","). It is
// owned by the single active editing session and is mutated only between
// dispatch calls; dispatch writes at most LastCharSearch.
//
// # Usage
//
//	st := vi.NewState()
//	in := vi.NewInput(pending)
//	instrs, status := vi.Interpret(in, st)
//	switch status {
//	case vi.StatusComplete:
//	    // Execute instrs, then record the action in st.Previous.
//	case vi.StatusPending:
//	    // Keep the pending buffer, wait for the next keystroke.
//	case vi.StatusNoMatch:
//	    // Try motion-only movement or discard the buffer.
//	}
package vi
