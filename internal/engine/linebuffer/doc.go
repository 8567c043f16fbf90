// Package linebuffer provides the single-line text buffer underlying the
// editor.
//
// The buffer holds UTF-8 text and an insertion point expressed as a byte
// offset. Movement is grapheme-cluster aware: the cursor never lands inside
// a cluster. Word scans follow Vi's classes: a word is a run of letters,
// digits and underscores or a run of other non-blank characters; a WORD is
// any run of non-blank characters.
//
// The buffer knows nothing about cut buffers, undo or modes. It exposes
// index queries and range edits; the editor composes them into the higher
// level cut and paste operations.
package linebuffer
