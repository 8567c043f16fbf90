// Package luahook runs user-provided Lua hooks at editor events.
//
// A hook script defines global functions that the editor calls at fixed
// points: viline_accept_line may rewrite an accepted line, and
// viline_history_filter decides whether a line is recorded in history.
// Undefined hooks are skipped.
package luahook
