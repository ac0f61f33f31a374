package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/hints"
)

// parseRange parses a --range value. n is the end used by open forms:
// the document length without its trailing newlines.
//
//	""      whole document
//	"6"     caret at 6
//	"6:11"  runes 6 to 11
//	":11"   start of document to 11
//	"6:"    6 to end of document
//
// Bounds are not checked here; selectRange reports them.
func parseRange(s string, n int) (mdedit.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return mdedit.Range{Start: 0, End: n}, nil
	}

	startText, endText, isSpan := strings.Cut(s, ":")
	if !isSpan {
		pos, err := parseOffset(s, s)
		if err != nil {
			return mdedit.Range{}, err
		}
		return mdedit.Range{Start: pos, End: pos}, nil
	}

	r := mdedit.Range{Start: 0, End: n}
	var err error
	if startText != "" {
		if r.Start, err = parseOffset(startText, s); err != nil {
			return mdedit.Range{}, err
		}
	}
	if endText != "" {
		if r.End, err = parseOffset(endText, s); err != nil {
			return mdedit.Range{}, err
		}
	}
	return r, nil
}

func parseOffset(text, whole string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: --range %q: %q is not an offset", ErrUsage, whole, text)
	}
	return v, nil
}

// selectRange parses spec and selects it in buf. Trailing newlines stay
// outside open ranges so markers land on the last line, not after it.
func selectRange(buf *mdedit.Buffer, spec string) error {
	content := utf8.RuneCountInString(strings.TrimRight(buf.Text(), "\n"))
	r, err := parseRange(spec, content)
	if err != nil {
		return err
	}
	if err := buf.SetRange(r); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForInvalidRange(buf.Len()))
	}
	return nil
}
