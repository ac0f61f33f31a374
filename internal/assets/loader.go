package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the built-in style used when none is requested.
const DefaultStyleName = "default"

// StyleLoader loads a CSS stylesheet by name (without the .css extension).
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// ValidateAssetName checks that name is safe for use as a filename.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
