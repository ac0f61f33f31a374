package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-mdedit/internal/hints"
)

// maxDocumentSize bounds documents read from stdin.
const maxDocumentSize = 16 << 20

// readDocument returns the content of path, or of stdin when path is empty.
// An interactive stdin is not read.
func readDocument(path string, env *Environment) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return string(data), nil
	}

	if env.StdinIsTerminal != nil && env.StdinIsTerminal() {
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}
	data, err := io.ReadAll(io.LimitReader(env.Stdin, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	if len(data) > maxDocumentSize {
		return "", fmt.Errorf("%w: stdin exceeds %d bytes", ErrReadInput, maxDocumentSize)
	}
	return string(data), nil
}

// displayName names the document in messages.
func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
