package mdedit

import "fmt"

// Format describes a markup style: the markers written around the
// selection and how lines are handled.
//
// Multiline formats split the selection on "\n" and wrap every line on its
// own. Block formats keep a blank line between the formatted text and any
// neighbouring text.
type Format struct {
	Name      string
	Prefix    Affix
	Suffix    Affix
	Multiline bool
	Block     bool
}

// FormatRef selects a format: either a Name looked up in the editor's
// registry or an ad hoc Format used as is.
type FormatRef interface {
	resolveIn(r *Registry) (Format, error)
}

// Name refers to a format registered in a Registry.
type Name string

// Built-in format names.
const (
	Bold          Name = "bold"
	Italic        Name = "italic"
	Link          Name = "link"
	Image         Name = "image"
	Header1       Name = "header1"
	Header2       Name = "header2"
	Header3       Name = "header3"
	Code          Name = "code"
	OrderedList   Name = "orderedList"
	UnorderedList Name = "unorderedList"
	Blockquote    Name = "blockquote"
)

func (n Name) resolveIn(r *Registry) (Format, error) {
	f, ok := r.Lookup(string(n))
	if !ok {
		return Format{}, fmt.Errorf("%w %q", ErrInvalidFormat, string(n))
	}
	return f, nil
}

func (f Format) resolveIn(*Registry) (Format, error) {
	return f.normalize(), nil
}

// normalize returns a copy with derived patterns filled in.
func (f Format) normalize() Format {
	f.Prefix = f.Prefix.normalize()
	f.Suffix = f.Suffix.normalize()
	return f
}

// String returns the format name, or a marker summary for unnamed formats.
func (f Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("format(%q…%q)", f.Prefix.Value.Text(), f.Suffix.Value.Text())
}
