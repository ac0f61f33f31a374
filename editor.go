package mdedit

import (
	"fmt"
	"time"
)

// Editor applies, removes and detects formats on the selection of an
// Accessor. Every call reads a fresh snapshot of the text and range, so the
// host may change both between calls.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	acc      Accessor
	registry *Registry
	engine   engine
}

// Option configures an Editor.
type Option func(*Editor)

// WithRegistry sets the registry used to resolve format names.
// A nil registry keeps the default one.
func WithRegistry(r *Registry) Option {
	return func(e *Editor) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithMatchTimeout bounds the time spent matching one marker pattern.
// Useful when patterns come from untrusted configuration.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithMatchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdedit: WithMatchTimeout duration must be positive")
	}
	return func(e *Editor) {
		e.engine.m.timeout = d
	}
}

// NewEditor returns an Editor over acc using the default registry.
func NewEditor(acc Accessor, opts ...Option) *Editor {
	e := &Editor{
		acc:      acc,
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry used to resolve names.
func (e *Editor) Registry() *Registry {
	return e.registry
}

// Range returns the current selection of the accessor.
func (e *Editor) Range() Range {
	return e.acc.Range()
}

// SetRange selects r.
func (e *Editor) SetRange(r Range) error {
	if err := e.acc.SetRange(r); err != nil {
		return fmt.Errorf("setting selection %s: %w", r, err)
	}
	return nil
}

// Insert replaces the current selection with text.
func (e *Editor) Insert(text string) error {
	if err := e.acc.ReplaceSelection(text); err != nil {
		return fmt.Errorf("replacing selection: %w", err)
	}
	return nil
}

// Selection returns the text before, inside and after the current range.
func (e *Editor) Selection() Selection {
	sel, _ := e.snapshot()
	return sel
}

// snapshot reads the normalized text split at the clamped current range.
func (e *Editor) snapshot() (Selection, Range) {
	text := normalizeNewlines(e.acc.Text())
	r := clampRange(e.acc.Range(), runeLen(text))
	return splitSelection(text, r), r
}

// Resolve returns the normalized format ref points to, with its patterns
// compiled. Unknown names fail with ErrInvalidFormat, malformed patterns
// with ErrInvalidPattern.
func (e *Editor) Resolve(ref FormatRef) (Format, error) {
	if ref == nil {
		return Format{}, fmt.Errorf("%w: nil reference", ErrInvalidFormat)
	}
	f, err := ref.resolveIn(e.registry)
	if err != nil {
		return Format{}, err
	}
	if err := e.engine.m.validate(f.Prefix); err != nil {
		return Format{}, fmt.Errorf("format %s prefix: %w", f, err)
	}
	if err := e.engine.m.validate(f.Suffix); err != nil {
		return Format{}, fmt.Errorf("format %s suffix: %w", f, err)
	}
	return f, nil
}

// Has reports whether the current selection carries the format, either
// with the markers included in the selection or sitting just outside it.
func (e *Editor) Has(ref FormatRef) (bool, error) {
	f, err := e.Resolve(ref)
	if err != nil {
		return false, err
	}
	sel, _ := e.snapshot()
	return e.engine.detect(sel, f)
}

// Apply wraps the current selection with the format. args are passed to
// generated markers (the URL of a link or image).
//
// Afterwards the selection brackets the original content, or, for a
// multiline format over a non-empty selection, covers the whole new block.
func (e *Editor) Apply(ref FormatRef, args ...string) error {
	f, err := e.Resolve(ref)
	if err != nil {
		return err
	}
	sel, r := e.snapshot()
	return e.commit(e.engine.planApply(sel, r, f, args))
}

// Remove strips the format from the current selection and selects the
// result. It does nothing when Has reports false.
func (e *Editor) Remove(ref FormatRef) error {
	f, err := e.Resolve(ref)
	if err != nil {
		return err
	}
	sel, r := e.snapshot()
	ed, ok, err := e.engine.planRemove(sel, r, f)
	if err != nil || !ok {
		return err
	}
	return e.commit(ed)
}

// Toggle removes the format when the selection has it and applies it
// otherwise.
func (e *Editor) Toggle(ref FormatRef, args ...string) error {
	has, err := e.Has(ref)
	if err != nil {
		return err
	}
	if has {
		return e.Remove(ref)
	}
	return e.Apply(ref, args...)
}

// commit writes ed through the accessor. The replaced range is selected
// first when it differs from the current one.
func (e *Editor) commit(ed edit) error {
	if ed.replace != e.acc.Range() {
		if err := e.SetRange(ed.replace); err != nil {
			return err
		}
	}
	if err := e.Insert(ed.text); err != nil {
		return err
	}
	return e.SetRange(ed.selection)
}
