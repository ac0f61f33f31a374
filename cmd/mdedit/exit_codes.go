package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/assets"
	"github.com/alnah/go-mdedit/internal/config"
	"github.com/alnah/go-mdedit/internal/yamlutil"
)

// Exit codes for the mdedit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Command succeeded
	ExitGeneral = 1 // General/unexpected error, or some batch files failed
	ExitUsage   = 2 // Invalid flags, config, format or range
	ExitIO      = 3 // File not found, permission denied, no input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrDuplicateName) ||
		errors.Is(err, config.ErrTemplateNeedsPattern) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) ||
		errors.Is(err, mdedit.ErrInvalidFormat) ||
		errors.Is(err, mdedit.ErrInvalidPattern) ||
		errors.Is(err, mdedit.ErrDuplicateFormat) ||
		errors.Is(err, mdedit.ErrUnnamedFormat) ||
		errors.Is(err, mdedit.ErrInvalidRange) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
