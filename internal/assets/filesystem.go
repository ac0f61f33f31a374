package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// stylesDir is the subdirectory of an asset path holding page styles.
const stylesDir = "styles"

// FilesystemLoader loads styles from {root}/styles/{name}.css.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader returns a loader rooted at dir, which must be an
// existing directory. Errors match ErrInvalidBasePath.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: no such directory: %s", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is a file", ErrInvalidBasePath, root)
	}
	return &FilesystemLoader{root: root}, nil
}

// LoadStyle returns the stylesheet called name. A missing file matches
// ErrStyleNotFound so callers can fall back to the built-in styles.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path, err := f.contained(filepath.Join(f.root, stylesDir, name+".css"))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- contained in the asset root
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("%w: %q in %s", ErrStyleNotFound, name, filepath.Join(f.root, stylesDir))
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

// contained resolves path and fails with ErrPathTraversal when the result
// lies outside the loader root, e.g. through a symlinked style file.
func (f *FilesystemLoader) contained(path string) (string, error) {
	resolved, err := resolve(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}
	rel, err := filepath.Rel(f.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s leaves %s", ErrPathTraversal, path, f.root)
	}
	return resolved, nil
}

// resolve returns the absolute form of path with symlinks evaluated. A path
// that does not exist yet keeps its unresolved absolute form.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if target, err := filepath.EvalSymlinks(abs); err == nil {
		return target, nil
	}
	return abs, nil
}

var _ StyleLoader = (*FilesystemLoader)(nil)
