package mdedit

// shift accumulates the selection movement caused by writing a format.
// It is threaded through the per-line loop of planApply so the offset
// arithmetic can be checked apart from text construction.
type shift struct {
	start int
	end   int
}

func newShift(r Range) shift {
	return shift{start: r.Start, end: r.End}
}

// line records one wrapped line with prefix and suffix lengths in runes.
//
// When spread is false the selection slides right past the prefix so it
// still brackets the original content. When spread is true (multiline
// format over non-empty content) the selection keeps its start and grows to
// cover the whole rebuilt block.
func (s *shift) line(prefixLen, suffixLen int, spread bool) {
	if spread {
		s.end += prefixLen + suffixLen
		return
	}
	s.start += prefixLen
	s.end += prefixLen
}

// padBefore records one newline inserted ahead of the block.
func (s *shift) padBefore() {
	s.start++
	s.end++
}

func (s shift) Range() Range {
	return Range{Start: s.start, End: s.end}
}
