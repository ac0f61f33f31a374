package mdedit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Range is a selection in rune offsets, Start inclusive and End exclusive.
// Start == End is a caret.
type Range struct {
	Start int
	End   int
}

// Len returns the number of selected runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsCaret reports whether nothing is selected.
func (r Range) IsCaret() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Selection is the buffer text split around the current range.
// Before + Content + After always equals the normalized buffer text.
type Selection struct {
	Before  string
	Content string
	After   string
}

// Accessor is the host text widget seen by an Editor.
//
// Offsets are rune offsets into Text. SetRange must make the editable
// region active (focused) when the host has such a notion.
// ReplaceSelection replaces the selected text, or inserts at the caret, as
// one atomic edit; hosts with an undo stack should record it there and
// signal a content change.
type Accessor interface {
	Text() string
	Range() Range
	SetRange(r Range) error
	ReplaceSelection(text string) error
}

// normalizeNewlines converts \r\n line endings to \n.
func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// runeLen returns the length of s in runes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// clampRange bounds r to a text of n runes, keeping Start <= End.
func clampRange(r Range, n int) Range {
	r.Start = min(max(r.Start, 0), n)
	r.End = min(max(r.End, r.Start), n)
	return r
}

// splitSelection slices normalized text at r.
func splitSelection(text string, r Range) Selection {
	runes := []rune(normalizeNewlines(text))
	r = clampRange(r, len(runes))
	return Selection{
		Before:  string(runes[:r.Start]),
		Content: string(runes[r.Start:r.End]),
		After:   string(runes[r.End:]),
	}
}
