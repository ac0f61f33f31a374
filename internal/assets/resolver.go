package assets

import "errors"

// Resolver loads styles from a custom directory first and falls back to the
// built-in ones when the style is not there.
type Resolver struct {
	custom   StyleLoader // nil without a custom path
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty customBasePath uses the
// built-in styles only.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle returns the style called name.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	// Validation and read errors are not masked by the fallback.
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// BuiltinNames returns the names of the built-in styles.
func (r *Resolver) BuiltinNames() []string {
	return r.embedded.Names()
}

// Compile-time interface check.
var _ StyleLoader = (*Resolver)(nil)
