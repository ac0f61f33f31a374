package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeStyle(t *testing.T, base, name, css string) {
	t.Helper()
	dir := filepath.Join(base, "styles")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(css), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - Rejects names that could escape a directory
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"default", false},
		{"my-style_2", false},
		{"", true},
		{"../etc", true},
		{"a/b", true},
		{`a\b`, true},
		{"style.css", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.name)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.name, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v", tt.name, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	l := NewEmbeddedLoader()

	if diff := cmp.Diff([]string{"dark", DefaultStyleName}, l.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	css, err := l.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(default) error = %v", err)
	}
	if !strings.Contains(css, "body {") {
		t.Errorf("default style has no body rule")
	}

	if _, err := l.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := l.LoadStyle("../default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(../default) error = %v, want ErrInvalidAssetName", err)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Styles from a custom directory
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader_Errors(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing"), file} {
		if _, err := NewFilesystemLoader(path); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(%q) error = %v, want ErrInvalidBasePath", path, err)
		}
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "team", "body { color: red; }")

	l, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	css, err := l.LoadStyle("team")
	if err != nil {
		t.Fatalf("LoadStyle(team) error = %v", err)
	}
	if css != "body { color: red; }" {
		t.Errorf("LoadStyle(team) = %q", css)
	}
	if _, err := l.LoadStyle("other"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(other) error = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	base := t.TempDir()
	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Fatal(err)
	}

	l, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolver - Custom-first lookup with built-in fallback
// ---------------------------------------------------------------------------

func TestResolver(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "default", "/* team default */")
	writeStyle(t, base, "team", "/* team */")

	r, err := NewResolver(base)
	if err != nil {
		t.Fatal(err)
	}

	builtinDark, err := NewEmbeddedLoader().LoadStyle("dark")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"default", "/* team default */"},
		{"team", "/* team */"},
		{"dark", builtinDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadStyle(tt.name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("LoadStyle(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	if _, err := r.LoadStyle("nowhere"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(nowhere) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := r.LoadStyle("a.b"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(a.b) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestNewResolver_BuiltinOnly(t *testing.T) {
	t.Parallel()

	r, err := NewResolver("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("LoadStyle(default) error = %v", err)
	}
	if len(r.BuiltinNames()) != 2 {
		t.Errorf("BuiltinNames() = %v", r.BuiltinNames())
	}
	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewResolver(missing) error = %v, want ErrInvalidBasePath", err)
	}
}
