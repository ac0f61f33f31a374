// Package mdedit applies, removes and detects Markdown markup around the
// selection of a plain-text editor.
//
// # Quick Start
//
// Wrap the host text widget in an Accessor (or use the in-memory Buffer),
// then toggle formats on its selection:
//
//	buf := mdedit.NewBuffer("Hello World!")
//	_ = buf.SetRange(mdedit.Range{Start: 6, End: 11})
//
//	ed := mdedit.NewEditor(buf)
//	if err := ed.Toggle(mdedit.Bold); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(buf.Text())   // Hello **World**!
//	fmt.Println(buf.Range())  // [8,13)
//
// Toggling again removes the markers. Links and images take their URL as
// an extra argument:
//
//	ed.Apply(mdedit.Link, "https://example.com")
//
// # Formats
//
// A Format pairs a prefix and a suffix Affix with two flags:
//
//   - Multiline formats (lists, blockquotes) wrap every selected line.
//   - Block formats (code, lists, blockquotes) keep one blank line between
//     the block and surrounding text.
//
// An Affix holds the Marker to write, literal or generated per line, and the
// regular expression that recognizes it. An optional antipattern rejects
// look-alike markers, so a link "[" is not found inside an image "![".
//
// Built-in formats live in DefaultRegistry. Ad hoc formats can be passed
// directly wherever a FormatRef is expected:
//
//	strike := mdedit.Format{Prefix: mdedit.Lit("~~"), Suffix: mdedit.Lit("~~")}
//	ed.Toggle(strike)
//
// Custom registries are built with NewRegistry or DefaultRegistry().With.
//
// # Selections
//
// Offsets are rune offsets. Every call reads the host text and range anew,
// normalizes \r\n to \n and splits the text into a Selection
// (Before, Content, After). Each Apply or Remove performs one text
// replacement and one selection update through the Accessor.
package mdedit
