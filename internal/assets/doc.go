// Package assets provides the stylesheets of preview pages.
//
// Styles are looked up by name:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── Resolver          - custom directory first, built-in as fallback
//
// Names are plain identifiers: path separators and dots are rejected, and
// FilesystemLoader checks that resolved files, symlinks included, stay
// inside basePath.
package assets
