package mdedit

import "strings"

// blockSpacing is the number of newlines kept between a block format and
// its neighbouring text.
const blockSpacing = 2

// edit is one buffer mutation: Text replaces the runes in replace, then
// selection becomes the active range.
type edit struct {
	replace   Range
	text      string
	selection Range
}

// engine holds the pure apply, remove and detect algorithms. It never
// touches an Accessor; Editor feeds it snapshots and writes the results.
type engine struct {
	m matcher
}

// planApply wraps the selected content with f's markers.
func (e engine) planApply(sel Selection, r Range, f Format, args []string) edit {
	lines := []string{sel.Content}
	if f.Multiline {
		lines = strings.Split(sel.Content, "\n")
	}

	spread := f.Multiline && sel.Content != ""
	acc := newShift(r)
	for i, line := range lines {
		pval := f.Prefix.Value.Render(line, i, args...)
		sval := f.Suffix.Value.Render(line, i, args...)
		acc.line(runeLen(pval), runeLen(sval), spread)
		lines[i] = pval + line + sval
	}

	insert := strings.Join(lines, "\n")
	if f.Block {
		insert = padBlock(insert, sel, &acc)
	}

	return edit{replace: r, text: insert, selection: acc.Range()}
}

// padBlock surrounds insert with newlines so that at most blockSpacing
// newlines separate it from existing text. Nothing is added at the edges
// of the buffer.
func padBlock(insert string, sel Selection, acc *shift) string {
	if sel.Before != "" {
		missing := blockSpacing - trailingNewlines(sel.Before)
		for ; missing > 0; missing-- {
			insert = "\n" + insert
			acc.padBefore()
		}
	}
	if sel.After != "" {
		missing := blockSpacing - leadingNewlines(sel.After)
		if missing > 0 {
			insert += strings.Repeat("\n", missing)
		}
	}
	return insert
}

func trailingNewlines(s string) int {
	return len(s) - len(strings.TrimRight(s, "\n"))
}

func leadingNewlines(s string) int {
	return len(s) - len(strings.TrimLeft(s, "\n"))
}

// planRemove strips f's markers from the selection. ok is false when the
// selection does not carry the format, in which case nothing changes.
func (e engine) planRemove(sel Selection, r Range, f Format) (_ edit, ok bool, err error) {
	has, err := e.detect(sel, f)
	if err != nil || !has {
		return edit{}, false, err
	}

	lines := []string{sel.Content}
	if f.Multiline {
		lines = strings.Split(sel.Content, "\n")
	}

	// Markers just outside a single-line selection are pulled into it.
	if !f.Multiline || len(lines) == 1 {
		outside, err := e.markersOutside(sel, f)
		if err != nil {
			return edit{}, false, err
		}
		if outside {
			head, err := e.m.suffixLen(sel.Before, f.Prefix)
			if err != nil {
				return edit{}, false, err
			}
			tail, err := e.m.prefixLen(sel.After, f.Suffix)
			if err != nil {
				return edit{}, false, err
			}
			r.Start -= head
			r.End += tail
			lines = []string{lastRunes(sel.Before, head) + sel.Content + firstRunes(sel.After, tail)}
		}
	}

	for i, line := range lines {
		stripped, err := e.strip(line, f)
		if err != nil {
			return edit{}, false, err
		}
		lines[i] = stripped
	}

	insert := strings.Join(lines, "\n")
	return edit{
		replace:   r,
		text:      insert,
		selection: Range{Start: r.Start, End: r.Start + runeLen(insert)},
	}, true, nil
}

// strip removes the prefix match at the start of line and the suffix match
// at its end. Overlapping matches leave an empty line.
func (e engine) strip(line string, f Format) (string, error) {
	head, err := e.m.prefixLen(line, f.Prefix)
	if err != nil {
		return "", err
	}
	tail, err := e.m.suffixLen(line, f.Suffix)
	if err != nil {
		return "", err
	}

	runes := []rune(line)
	if head+tail >= len(runes) {
		return "", nil
	}
	return string(runes[head : len(runes)-tail]), nil
}

// detect reports whether the selection carries f.
//
// A single-line selection matches when the markers sit immediately outside
// it or are included at its edges. A multi-line selection of a multiline
// format matches only when every line is wrapped.
func (e engine) detect(sel Selection, f Format) (bool, error) {
	lines := strings.Split(sel.Content, "\n")

	if !f.Multiline || len(lines) == 1 {
		outside, err := e.markersOutside(sel, f)
		if err != nil || outside {
			return outside, err
		}
		return e.wrapped(sel.Content, f)
	}

	for _, line := range lines {
		ok, err := e.wrapped(line, f)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// markersOutside reports whether Before ends with the prefix and After
// starts with the suffix.
func (e engine) markersOutside(sel Selection, f Format) (bool, error) {
	ok, err := e.m.hasSuffix(sel.Before, f.Prefix)
	if err != nil || !ok {
		return false, err
	}
	return e.m.hasPrefix(sel.After, f.Suffix)
}

// wrapped reports whether text starts with the prefix and ends with the
// suffix.
func (e engine) wrapped(text string, f Format) (bool, error) {
	ok, err := e.m.hasPrefix(text, f.Prefix)
	if err != nil || !ok {
		return false, err
	}
	return e.m.hasSuffix(text, f.Suffix)
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	return string(runes[:min(n, len(runes))])
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	return string(runes[len(runes)-min(n, len(runes)):])
}
