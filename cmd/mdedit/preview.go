package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-mdedit/internal/assets"
	"github.com/alnah/go-mdedit/internal/fileutil"
	"github.com/alnah/go-mdedit/internal/hints"
	"github.com/alnah/go-mdedit/internal/preview"
)

// runPreview renders a document to an HTML page.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if isHelp(err) {
		printPreviewUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: preview takes at most one file", ErrUsage)
	}

	var path string
	if len(positional) == 1 {
		path = positional[0]
	}
	text, err := readDocument(path, env)
	if err != nil {
		return err
	}

	opts := []preview.Option{preview.WithStyle(flags.style)}
	if !flags.noCSS {
		css, err := loadPageCSS(flags.css, flags.assetPath)
		if err != nil {
			return err
		}
		opts = append(opts, preview.WithPageCSS(css))
	}
	if flags.hardWraps {
		opts = append(opts, preview.WithHardWraps())
	}
	renderer, err := preview.NewRenderer(opts...)
	if err != nil {
		return err
	}

	start := env.Now()
	page, err := renderer.ToHTML(ctx, text)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	if path != "" {
		if page, err = preview.RewriteRelativePaths(page, filepath.Dir(path)); err != nil {
			return err
		}
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Rendered %s (%v)\n", displayName(path), env.Now().Sub(start))
	}

	if flags.output == "" {
		if _, err := io.WriteString(env.Stdout, page); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(flags.output, []byte(page)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// loadPageCSS resolves a page style, from assetPath first when set.
func loadPageCSS(name, assetPath string) (string, error) {
	resolver, err := assets.NewResolver(assetPath)
	if err != nil {
		return "", fmt.Errorf("--asset-path: %w", err)
	}
	css, err := resolver.LoadStyle(name)
	if errors.Is(err, assets.ErrStyleNotFound) {
		return "", fmt.Errorf("%w%s", err, hints.ForUnknownStyle(resolver.BuiltinNames()))
	}
	return css, err
}
