package mdedit

import (
	"fmt"
	"sync"
)

// defaultHistoryLimit is the number of undo steps kept by a Buffer.
const defaultHistoryLimit = 100

// Change describes one content change of a Buffer.
type Change struct {
	Replaced Range  // range of the previous text that was replaced
	Inserted string // text written in its place
}

// bufferState is one undo or redo entry.
type bufferState struct {
	text []rune
	sel  Range
}

// Buffer is an in-memory Accessor with an undo history, for hosts without a
// native text widget: command-line tools, tests, servers.
//
// Buffer is safe for concurrent use. Change listeners run after the edit
// is applied, outside the buffer lock, so they may read the buffer.
type Buffer struct {
	mu        sync.Mutex
	text      []rune
	sel       Range
	undo      []bufferState
	redo      []bufferState
	limit     int
	listeners []func(Change)
}

// BufferOption configures a Buffer.
type BufferOption func(*Buffer)

// WithHistoryLimit sets the number of undo steps kept. n <= 0 keeps the
// default.
func WithHistoryLimit(n int) BufferOption {
	return func(b *Buffer) {
		if n > 0 {
			b.limit = n
		}
	}
}

// NewBuffer returns a buffer holding text with \r\n normalized to \n and a
// caret at the end.
func NewBuffer(text string, opts ...BufferOption) *Buffer {
	runes := []rune(normalizeNewlines(text))
	b := &Buffer{
		text:  runes,
		sel:   Range{Start: len(runes), End: len(runes)},
		limit: defaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compile-time check that Buffer implements Accessor.
var _ Accessor = (*Buffer)(nil)

// Text returns the buffer content.
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.text)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.text)
}

// Range returns the current selection.
func (b *Buffer) Range() Range {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel
}

// SetRange selects r. It fails with ErrInvalidRange unless
// 0 <= r.Start <= r.End <= Len().
func (b *Buffer) SetRange(r Range) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r.Start < 0 || r.End < r.Start || r.End > len(b.text) {
		return fmt.Errorf("%w: %s in buffer of length %d", ErrInvalidRange, r, len(b.text))
	}
	b.sel = r
	return nil
}

// ReplaceSelection replaces the selected runes with text as one undoable
// step and leaves a caret after the inserted text.
func (b *Buffer) ReplaceSelection(text string) error {
	inserted := []rune(normalizeNewlines(text))

	b.mu.Lock()
	r := b.sel
	b.pushUndo()
	b.redo = b.redo[:0]

	next := make([]rune, 0, len(b.text)-r.Len()+len(inserted))
	next = append(next, b.text[:r.Start]...)
	next = append(next, inserted...)
	next = append(next, b.text[r.End:]...)
	b.text = next

	caret := r.Start + len(inserted)
	b.sel = Range{Start: caret, End: caret}
	listeners := b.listeners
	b.mu.Unlock()

	notify(listeners, Change{Replaced: r, Inserted: string(inserted)})
	return nil
}

// Undo restores the state before the last edit.
func (b *Buffer) Undo() error {
	return b.step(&b.undo, &b.redo, ErrNothingToUndo)
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() error {
	return b.step(&b.redo, &b.undo, ErrNothingToRedo)
}

// CanUndo reports whether Undo has anything to restore.
func (b *Buffer) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.undo) > 0
}

// CanRedo reports whether Redo has anything to reapply.
func (b *Buffer) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.redo) > 0
}

// OnChange registers fn to run after every content change, including undo
// and redo.
func (b *Buffer) OnChange(fn func(Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// step pops a state from one stack, saves the current state on the other
// and restores the popped one.
func (b *Buffer) step(from, to *[]bufferState, empty error) error {
	b.mu.Lock()
	if len(*from) == 0 {
		b.mu.Unlock()
		return empty
	}

	last := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	*to = append(*to, bufferState{text: b.text, sel: b.sel})

	previous := len(b.text)
	b.text = last.text
	b.sel = last.sel
	change := Change{Replaced: Range{Start: 0, End: previous}, Inserted: string(b.text)}
	listeners := b.listeners
	b.mu.Unlock()

	notify(listeners, change)
	return nil
}

// pushUndo saves the current state, dropping the oldest entry past the
// limit. Callers hold b.mu.
func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, bufferState{text: b.text, sel: b.sel})
	if len(b.undo) > b.limit {
		b.undo = append(b.undo[:0], b.undo[len(b.undo)-b.limit:]...)
	}
}

func notify(listeners []func(Change), c Change) {
	for _, fn := range listeners {
		fn(c)
	}
}
