package mdedit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Registry is an immutable name-to-format table.
// It is safe for concurrent use.
type Registry struct {
	formats map[string]Format
	names   []string // registration order
}

// linkTarget renders the "](url)" tail of links and images from the first
// extra argument.
func linkTarget(_ string, _ int, args ...string) string {
	url := ""
	if len(args) > 0 {
		url = args[0]
	}
	return "](" + url + ")"
}

// listNumber renders "1. ", "2. ", ... from the zero-based line index.
func listNumber(_ string, index int, _ ...string) string {
	return strconv.Itoa(index+1) + ". "
}

// heading returns the ATX heading format of the given level. The
// antipattern stops a deeper heading from matching: "### " ends with "# ".
func heading(name Name, level int) Format {
	marker := strings.Repeat("#", level) + " "
	return Format{
		Name: string(name),
		Prefix: Affix{
			Value:       Literal(marker),
			Antipattern: regexp2.Escape("#" + marker),
		},
	}
}

// builtinFormats returns the default markdown formats.
func builtinFormats() []Format {
	target := Affix{Value: Generate(linkTarget), Pattern: `\]\(.*?\)`}

	return []Format{
		{Name: string(Bold), Prefix: Lit("**"), Suffix: Lit("**")},
		{Name: string(Italic), Prefix: Lit("_"), Suffix: Lit("_")},
		{
			Name:   string(Link),
			Prefix: Affix{Value: Literal("["), Pattern: `\[`, Antipattern: `\!\[`},
			Suffix: target,
		},
		{Name: string(Image), Prefix: Lit("!["), Suffix: target},
		heading(Header1, 1),
		heading(Header2, 2),
		heading(Header3, 3),
		{Name: string(Code), Prefix: Lit("```\n"), Suffix: Lit("\n```"), Block: true},
		{
			Name:      string(OrderedList),
			Prefix:    Affix{Value: Generate(listNumber), Pattern: `[0-9]+\. `},
			Multiline: true,
			Block:     true,
		},
		{Name: string(UnorderedList), Prefix: Lit("- "), Multiline: true, Block: true},
		{Name: string(Blockquote), Prefix: Lit("> "), Multiline: true, Block: true},
	}
}

var defaultRegistry = mustRegistry(builtinFormats()...)

// DefaultRegistry returns the built-in markdown formats: bold, italic, link,
// image, header1-3, code, orderedList, unorderedList and blockquote.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from named formats. Names must be non-empty
// and unique, and every pattern must compile.
func NewRegistry(formats ...Format) (*Registry, error) {
	r := &Registry{
		formats: make(map[string]Format, len(formats)),
		names:   make([]string, 0, len(formats)),
	}
	for _, f := range formats {
		if _, exists := r.formats[f.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFormat, f.Name)
		}
		if err := r.add(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mustRegistry(formats ...Format) *Registry {
	r, err := NewRegistry(formats...)
	if err != nil {
		panic("mdedit: " + err.Error())
	}
	return r
}

// add stores a normalized copy of f, replacing any format with the same name.
func (r *Registry) add(f Format) error {
	if f.Name == "" {
		return ErrUnnamedFormat
	}
	f = f.normalize()

	var m matcher
	if err := m.validate(f.Prefix); err != nil {
		return fmt.Errorf("format %q prefix: %w", f.Name, err)
	}
	if err := m.validate(f.Suffix); err != nil {
		return fmt.Errorf("format %q suffix: %w", f.Name, err)
	}

	if _, exists := r.formats[f.Name]; !exists {
		r.names = append(r.names, f.Name)
	}
	r.formats[f.Name] = f
	return nil
}

// With returns a new registry holding r's formats plus the given ones.
// A format whose name is already registered replaces the previous entry.
// r itself is not modified.
func (r *Registry) With(formats ...Format) (*Registry, error) {
	out := &Registry{
		formats: make(map[string]Format, len(r.formats)+len(formats)),
		names:   append(make([]string, 0, len(r.names)+len(formats)), r.names...),
	}
	for name, f := range r.formats {
		out.formats[name] = f
	}
	for _, f := range formats {
		if err := out.add(f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, bool) {
	f, ok := r.formats[name]
	return f, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered formats.
func (r *Registry) Len() int {
	return len(r.names)
}
