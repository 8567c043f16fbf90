package linebuffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Buffer is a single-line editing buffer: UTF-8 text plus an insertion
// point. The insertion point is a byte offset and always sits on a
// grapheme-cluster boundary (or at the end of the text).
type Buffer struct {
	line string
	pos  int
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer holding s with the insertion point at the
// end.
func FromString(s string) *Buffer {
	return &Buffer{line: s, pos: len(s)}
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return b.line
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.line)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.line) == 0
}

// InsertionPoint returns the byte offset of the insertion point.
func (b *Buffer) InsertionPoint() int {
	return b.pos
}

// SetInsertionPoint moves the insertion point, clamping into range.
func (b *Buffer) SetInsertionPoint(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.line) {
		pos = len(b.line)
	}
	b.pos = pos
}

// Set replaces the whole content and puts the insertion point at the end.
func (b *Buffer) Set(s string) {
	b.line = s
	b.pos = len(s)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.line = ""
	b.pos = 0
}

// IsAtEnd returns true if the insertion point is past the last grapheme.
func (b *Buffer) IsAtEnd() bool {
	return b.pos == len(b.line)
}

// InsertChar inserts r at the insertion point and advances past it.
func (b *Buffer) InsertChar(r rune) {
	b.InsertString(string(r))
}

// InsertString inserts s at the insertion point and advances past it.
func (b *Buffer) InsertString(s string) {
	b.line = b.line[:b.pos] + s + b.line[b.pos:]
	b.pos += len(s)
}

// DeleteRange removes [start, end) and returns the removed text. The
// insertion point is moved to start when it was inside or right of the
// range, and kept otherwise.
func (b *Buffer) DeleteRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(b.line) {
		end = len(b.line)
	}
	if start >= end {
		return ""
	}

	removed := b.line[start:end]
	b.line = b.line[:start] + b.line[end:]

	switch {
	case b.pos >= end:
		b.pos -= end - start
	case b.pos > start:
		b.pos = start
	}
	return removed
}

// MoveToStart puts the insertion point before the first grapheme.
func (b *Buffer) MoveToStart() {
	b.pos = 0
}

// MoveToEnd puts the insertion point after the last grapheme.
func (b *Buffer) MoveToEnd() {
	b.pos = len(b.line)
}

// MoveLeft steps the insertion point one grapheme left.
func (b *Buffer) MoveLeft() {
	b.pos = b.GraphemeLeftIndex()
}

// MoveRight steps the insertion point one grapheme right.
func (b *Buffer) MoveRight() {
	b.pos = b.GraphemeRightIndex()
}

// GraphemeRightIndex returns the byte offset one grapheme right of the
// insertion point.
func (b *Buffer) GraphemeRightIndex() int {
	if b.pos >= len(b.line) {
		return len(b.line)
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(b.line[b.pos:], -1)
	return len(b.line) - len(rest)
}

// GraphemeLeftIndex returns the byte offset one grapheme left of the
// insertion point.
func (b *Buffer) GraphemeLeftIndex() int {
	if b.pos == 0 {
		return 0
	}
	// Walk the clusters up to the insertion point; the last boundary
	// before it is the target.
	prev := 0
	state := -1
	rest := b.line
	consumed := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := consumed + len(cluster)
		if next >= b.pos {
			return prev
		}
		prev = next
		consumed = next
	}
	return prev
}

// CurrentGrapheme returns the grapheme cluster under the insertion point.
func (b *Buffer) CurrentGrapheme() string {
	return b.line[b.pos:b.GraphemeRightIndex()]
}

// charClass partitions characters for Vi word scans.
type charClass uint8

const (
	classBlank charClass = iota
	classWord
	classOther
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classBlank
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classOther
	}
}

// bigClassOf collapses word and punctuation runs: a WORD is anything
// non-blank.
func bigClassOf(r rune) charClass {
	if unicode.IsSpace(r) {
		return classBlank
	}
	return classWord
}

// WordRightStartIndex returns the byte offset of the start of the next
// word right of the insertion point.
func (b *Buffer) WordRightStartIndex() int {
	return b.nextWordStart(classOf)
}

// BigWordRightStartIndex returns the byte offset of the start of the next
// WORD right of the insertion point.
func (b *Buffer) BigWordRightStartIndex() int {
	return b.nextWordStart(bigClassOf)
}

// WordRightEndIndex returns the byte offset just past the end of the
// current or next word.
func (b *Buffer) WordRightEndIndex() int {
	return b.nextWordEnd(classOf)
}

// BigWordRightEndIndex returns the byte offset just past the end of the
// current or next WORD.
func (b *Buffer) BigWordRightEndIndex() int {
	return b.nextWordEnd(bigClassOf)
}

// WordLeftIndex returns the byte offset of the start of the word left of
// the insertion point.
func (b *Buffer) WordLeftIndex() int {
	return b.prevWordStart(classOf)
}

// BigWordLeftIndex returns the byte offset of the start of the WORD left
// of the insertion point.
func (b *Buffer) BigWordLeftIndex() int {
	return b.prevWordStart(bigClassOf)
}

func (b *Buffer) nextWordStart(class func(rune) charClass) int {
	i := b.pos
	if i >= len(b.line) {
		return len(b.line)
	}

	r, size := utf8.DecodeRuneInString(b.line[i:])
	current := class(r)
	i += size

	// Skip the rest of the current run, then any blanks.
	if current != classBlank {
		for i < len(b.line) {
			r, size = utf8.DecodeRuneInString(b.line[i:])
			if class(r) != current {
				break
			}
			i += size
		}
	}
	for i < len(b.line) {
		r, size = utf8.DecodeRuneInString(b.line[i:])
		if class(r) != classBlank {
			break
		}
		i += size
	}
	return i
}

func (b *Buffer) nextWordEnd(class func(rune) charClass) int {
	// Step off the current grapheme first: "e" always advances.
	i := b.GraphemeRightIndex()

	// Skip blanks to the next run.
	for i < len(b.line) {
		r, size := utf8.DecodeRuneInString(b.line[i:])
		if class(r) != classBlank {
			break
		}
		i += size
	}
	if i >= len(b.line) {
		return len(b.line)
	}

	r, size := utf8.DecodeRuneInString(b.line[i:])
	current := class(r)
	i += size
	for i < len(b.line) {
		r, size = utf8.DecodeRuneInString(b.line[i:])
		if class(r) != current {
			break
		}
		i += size
	}
	return i
}

func (b *Buffer) prevWordStart(class func(rune) charClass) int {
	i := b.pos

	// Skip blanks leftwards.
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(b.line[:i])
		if class(r) != classBlank {
			break
		}
		i -= size
	}
	if i == 0 {
		return 0
	}

	r, size := utf8.DecodeLastRuneInString(b.line[:i])
	current := class(r)
	i -= size
	for i > 0 {
		r, size = utf8.DecodeLastRuneInString(b.line[:i])
		if class(r) != current {
			break
		}
		i -= size
	}
	return i
}

// FindCharRight returns the byte offset of the next occurrence of c
// strictly right of the insertion point.
func (b *Buffer) FindCharRight(c rune) (int, bool) {
	from := b.GraphemeRightIndex()
	idx := strings.IndexRune(b.line[from:], c)
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}

// FindCharLeft returns the byte offset of the previous occurrence of c
// strictly left of the insertion point.
func (b *Buffer) FindCharLeft(c rune) (int, bool) {
	idx := strings.LastIndex(b.line[:b.pos], string(c))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// ReplaceChar replaces the grapheme under the insertion point with r,
// leaving the insertion point in place.
func (b *Buffer) ReplaceChar(r rune) {
	if b.pos >= len(b.line) {
		return
	}
	end := b.GraphemeRightIndex()
	b.line = b.line[:b.pos] + string(r) + b.line[end:]
}

// SwitchcaseChar toggles the case of the character under the insertion
// point and steps one grapheme right, matching Vi's "~".
func (b *Buffer) SwitchcaseChar() {
	if b.pos >= len(b.line) {
		return
	}
	end := b.GraphemeRightIndex()
	cur := b.line[b.pos:end]

	r, _ := utf8.DecodeRuneInString(cur)
	var flipped rune
	switch {
	case unicode.IsUpper(r):
		flipped = unicode.ToLower(r)
	case unicode.IsLower(r):
		flipped = unicode.ToUpper(r)
	default:
		b.pos = end
		return
	}

	b.line = b.line[:b.pos] + string(flipped) + b.line[end:]
	b.pos = b.pos + utf8.RuneLen(flipped)
}
