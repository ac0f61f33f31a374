package mdedit

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidPattern  = errors.New("invalid marker pattern")
	ErrDuplicateFormat = errors.New("duplicate format name")
	ErrUnnamedFormat   = errors.New("registered format requires a name")

	// Selection errors.
	ErrInvalidRange = errors.New("invalid selection range")

	// Buffer history errors.
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
