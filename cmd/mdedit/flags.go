package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdedit/internal/assets"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// editFlags holds flags for apply, remove and toggle.
type editFlags struct {
	common  commonFlags
	rng     string
	args    []string
	write   bool
	json    bool
	workers int
}

// hasFlags holds flags for the has command.
type hasFlags struct {
	common commonFlags
	rng    string
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	quiet     bool
	verbose   bool
	output    string
	css       string
	noCSS     bool
	assetPath string
	style     string
	hardWraps bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show selections and timing")
}

// addRangeFlag adds the selection range flag to a FlagSet.
func addRangeFlag(fs *flag.FlagSet, rng *string) {
	fs.StringVarP(rng, "range", "r", "", "selection as START:END rune offsets (default: whole document)")
}

// newFlagSet returns a silent FlagSet: errors and help are reported by the caller.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseEditFlags parses flags for apply, remove and toggle.
// remove takes no extra arguments.
func parseEditFlags(cmd string, args []string) (*editFlags, []string, error) {
	fs := newFlagSet(cmd)
	f := &editFlags{}

	addCommonFlags(fs, &f.common)
	addRangeFlag(fs, &f.rng)
	if cmd != cmdRemove {
		fs.StringArrayVarP(&f.args, "arg", "a", nil, "extra argument for the markers, e.g. a link URL (repeatable)")
	}
	fs.BoolVarP(&f.write, "write", "w", false, "write the result back to each file")
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers with --write (0 = auto)")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseHasFlags parses flags for the has command.
func parseHasFlags(args []string) (*hasFlags, []string, error) {
	fs := newFlagSet(cmdHas)
	f := &hasFlags{}

	addCommonFlags(fs, &f.common)
	addRangeFlag(fs, &f.rng)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses flags for the preview command.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := newFlagSet(cmdPreview)
	f := &previewFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing")
	fs.StringVarP(&f.output, "output", "o", "", "write the page to a file instead of stdout")
	fs.StringVar(&f.css, "css", assets.DefaultStyleName, "page style name")
	fs.BoolVar(&f.noCSS, "no-css", false, "render without a page style")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/<name>.css overriding built-in styles")
	fs.StringVar(&f.style, "style", "", "code highlighting style (default: github)")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render single newlines as line breaks")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFlagSet parses args. flag.ErrHelp is returned as is so the caller
// can print usage; other errors wrap ErrUsage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// validateWorkers checks that an explicit worker count is in range.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: --workers must be <= %d, got %d", ErrUsage, maxWorkers, n)
	}
	return nil
}
