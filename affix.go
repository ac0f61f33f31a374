package mdedit

import "github.com/dlclark/regexp2"

// Generator produces the marker text for one line of a selection.
// index is the zero-based position of the line inside the selection and
// args are the extra arguments given to Apply or Toggle.
type Generator func(line string, index int, args ...string) string

// Marker is the text written around a selection: either a constant string
// or a Generator evaluated per line.
type Marker struct {
	text string
	gen  Generator
}

// Literal returns a Marker that always renders s.
func Literal(s string) Marker {
	return Marker{text: s}
}

// Generate returns a Marker that renders by calling fn.
// A nil fn renders the empty string.
func Generate(fn Generator) Marker {
	if fn == nil {
		return Marker{}
	}
	return Marker{gen: fn}
}

// IsGenerated reports whether the marker is computed per line.
func (m Marker) IsGenerated() bool {
	return m.gen != nil
}

// Text returns the literal text of a constant marker, or "" for a generated one.
func (m Marker) Text() string {
	return m.text
}

// Render returns the marker text for a line.
func (m Marker) Render(line string, index int, args ...string) string {
	if m.gen != nil {
		return m.gen(line, index, args...)
	}
	return m.text
}

// Affix describes a prefix or suffix: the marker to write, the pattern that
// recognizes an existing marker, and an optional antipattern that
// disqualifies a pattern match at the same anchor (a link "[" must not be
// the tail of an image "![").
//
// Patterns use regexp2 syntax and are never anchored here; the engine
// anchors them at the start or end of the probed text.
type Affix struct {
	Value       Marker
	Pattern     string
	Antipattern string
}

// Lit is the shorthand for an affix whose marker is the literal s and whose
// pattern is s escaped.
func Lit(s string) Affix {
	return Affix{Value: Literal(s)}
}

// normalize fills Pattern from a literal Value when it is missing.
// A generated value without a pattern stays undetectable.
func (a Affix) normalize() Affix {
	if a.Pattern == "" && !a.Value.IsGenerated() {
		a.Pattern = regexp2.Escape(a.Value.Text())
	}
	return a
}

// detectable reports whether the affix can be recognized in text.
func (a Affix) detectable() bool {
	return a.Pattern != "" || !a.Value.IsGenerated()
}
