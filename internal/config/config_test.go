package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdedit/internal/yamlutil"
)

const sampleYAML = `
defaults:
  url: "https://example.com"
formats:
  - name: strike
    prefix: "~~"
    suffix: "~~"
  - name: task
    multiline: true
    block: true
    prefix:
      value: "- [ ] "
      pattern: '- \[[ xX]\] '
  - name: numbered
    multiline: true
    prefix: { value: "{n}) ", pattern: '[0-9]+\) ' }
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Reads, decodes and validates a config file
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "mdedit.yaml", sampleYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := &Config{
		Defaults: DefaultsConfig{URL: "https://example.com"},
		Formats: []FormatConfig{
			{Name: "strike", Prefix: AffixConfig{Value: "~~"}, Suffix: AffixConfig{Value: "~~"}},
			{Name: "task", Multiline: true, Block: true, Prefix: AffixConfig{Value: "- [ ] ", Pattern: `- \[[ xX]\] `}},
			{Name: "numbered", Multiline: true, Prefix: AffixConfig{Value: "{n}) ", Pattern: `[0-9]+\) `}},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown key", content: "formats:\n  - name: x\n    prefixx: a\n", wantErr: ErrConfigParse},
		{name: "unknown affix key", content: "formats:\n  - name: x\n    prefix: {value: a, patern: b}\n", wantErr: ErrConfigParse},
		{name: "syntax", content: "formats: [", wantErr: ErrConfigParse},
		{name: "missing name", content: "formats:\n  - prefix: a\n", wantErr: ErrFieldRequired},
		{name: "duplicate name", content: "formats:\n  - name: a\n  - name: a\n", wantErr: ErrDuplicateName},
		{name: "template without pattern", content: "formats:\n  - name: n\n    prefix: \"{n}. \"\n", wantErr: ErrTemplateNeedsPattern},
		{name: "name too long", content: "formats:\n  - name: " + strings.Repeat("a", MaxNameLength+1) + "\n", wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), "bad.yaml", tt.content)
			_, err := LoadConfig(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestLoadConfig_TooLarge(t *testing.T) {
	t.Parallel()

	content := "# " + strings.Repeat("x", yamlutil.MaxInputSize) + "\n"
	path := writeConfig(t, t.TempDir(), "big.yaml", content)

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) || !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse and ErrInputTooLarge", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_MissingPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || len(nf.Searched) != 1 || nf.Searched[0] != path {
		t.Errorf("NotFoundError = %+v, want searched [%s]", nf, path)
	}
}

// Not parallel: changes the working directory and environment.
func TestResolveConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("user config dir is not driven by XDG_CONFIG_HOME")
	}

	work := t.TempDir()
	xdg := t.TempDir()
	t.Chdir(work)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	t.Run("local yml", func(t *testing.T) {
		writeConfig(t, work, "local.yml", "formats: []\n")
		got, err := resolveConfigPath("local")
		if err != nil {
			t.Fatal(err)
		}
		if got != "local.yml" {
			t.Errorf("path = %q, want local.yml", got)
		}
	})

	t.Run("user config dir", func(t *testing.T) {
		want := writeConfig(t, xdg, filepath.Join(dirName, "team.yaml"), "formats: []\n")
		got, err := resolveConfigPath("team")
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})

	t.Run("not found lists every location", func(t *testing.T) {
		_, err := resolveConfigPath("ghost")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("error = %v, want *NotFoundError", err)
		}
		want := []string{
			"ghost.yaml",
			"ghost.yml",
			filepath.Join(xdg, dirName, "ghost.yaml"),
			filepath.Join(xdg, dirName, "ghost.yml"),
		}
		if diff := cmp.Diff(want, nf.Searched); diff != "" {
			t.Errorf("searched mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAffixConfig_IsTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"~~", false},
		{"{n}. ", true},
		{"{i}_", true},
		{"]({arg})", true},
		{"<{line}>", true},
		{"{x}", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			if got := (AffixConfig{Value: tt.value}).IsTemplate(); got != tt.want {
				t.Errorf("IsTemplate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: %v", err)
	}
	if err := validateFieldLength("f", "12345678901", 10); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("value over limit: error = %v, want ErrFieldTooLong", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if len(cfg.Formats) != 0 || cfg.Defaults.URL != "" {
		t.Errorf("DefaultConfig() = %+v, want empty", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
