package vi

import (
	"fmt"

	"github.com/dshills/viline/internal/edit"
)

// CharSearchKind identifies the direction and inclusivity of a remembered
// character search.
type CharSearchKind uint8

const (
	// SearchToRight seeks right through the target, inclusive (from "f").
	SearchToRight CharSearchKind = iota

	// SearchTillRight seeks right up to the target, exclusive (from "t").
	SearchTillRight

	// SearchToLeft seeks left through the target, inclusive (from "F").
	SearchToLeft

	// SearchTillLeft seeks left up to the target, exclusive (from "T").
	SearchTillLeft
)

// String returns the search kind name.
func (k CharSearchKind) String() string {
	switch k {
	case SearchToRight:
		return "toRight"
	case SearchTillRight:
		return "tillRight"
	case SearchToLeft:
		return "toLeft"
	case SearchTillLeft:
		return "tillLeft"
	default:
		return fmt.Sprintf("CharSearchKind(%d)", k)
	}
}

// CharSearch records the last character-search motion used in a cut, so a
// later ";" or "," can replay it without retyping the target character.
type CharSearch struct {
	// Kind is the direction and inclusivity of the search.
	Kind CharSearchKind

	// Char is the target character.
	Char rune
}

// String returns a human-readable representation of the search.
func (s CharSearch) String() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Char)
}

// Reverse returns the search with its direction mirrored and the same
// target character.
func (s CharSearch) Reverse() CharSearch {
	switch s.Kind {
	case SearchToRight:
		return CharSearch{Kind: SearchToLeft, Char: s.Char}
	case SearchTillRight:
		return CharSearch{Kind: SearchTillLeft, Char: s.Char}
	case SearchToLeft:
		return CharSearch{Kind: SearchToRight, Char: s.Char}
	default: // SearchTillLeft
		return CharSearch{Kind: SearchTillRight, Char: s.Char}
	}
}

// ToCut returns the buffer-cut command matching this search.
func (s CharSearch) ToCut() edit.Command {
	switch s.Kind {
	case SearchToRight:
		return edit.CutRightUntil(s.Char)
	case SearchTillRight:
		return edit.CutRightBefore(s.Char)
	case SearchToLeft:
		return edit.CutLeftUntil(s.Char)
	default: // SearchTillLeft
		return edit.CutLeftBefore(s.Char)
	}
}
