package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/config"
)

func TestExpandTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tmpl  string
		line  string
		index int
		args  []string
		want  string
	}{
		{tmpl: "{n}) ", index: 0, want: "1) "},
		{tmpl: "{i}: ", index: 4, want: "4: "},
		{tmpl: "]({arg})", args: []string{"https://a", "ignored"}, want: "](https://a)"},
		{tmpl: "]({arg})", want: "]()"},
		{tmpl: " <!-- {line} -->", line: "text", want: " <!-- text -->"},
		{tmpl: "{n}/{i}", index: 1, want: "2/1"},
	}

	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			t.Parallel()

			got := expandTemplate(tt.tmpl)(tt.line, tt.index, tt.args...)
			if got != tt.want {
				t.Errorf("expandTemplate(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestBuildRegistry(t *testing.T) {
	t.Parallel()

	t.Run("no formats keeps the default registry", func(t *testing.T) {
		t.Parallel()

		reg, err := buildRegistry(config.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if reg != mdedit.DefaultRegistry() {
			t.Error("expected the shared default registry")
		}
	})

	t.Run("configured formats extend and override", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Formats: []config.FormatConfig{
			{Name: "task", Multiline: true, Block: true, Prefix: config.AffixConfig{Value: "- [ ] ", Pattern: `- \[[ xX]\] `}},
			{Name: "numbered", Multiline: true, Prefix: config.AffixConfig{Value: "{n}) ", Pattern: `[0-9]+\) `}},
			{Name: "italic", Prefix: config.AffixConfig{Value: "*"}, Suffix: config.AffixConfig{Value: "*"}},
		}}

		reg, err := buildRegistry(cfg)
		if err != nil {
			t.Fatal(err)
		}
		names := reg.Names()
		if diff := cmp.Diff([]string{"task", "numbered"}, names[len(names)-2:]); diff != "" {
			t.Errorf("appended names mismatch (-want +got):\n%s", diff)
		}
		if reg.Len() != mdedit.DefaultRegistry().Len()+2 {
			t.Errorf("Len() = %d", reg.Len())
		}

		task, _ := reg.Lookup("task")
		if task.Prefix.Value.IsGenerated() || task.Prefix.Value.Text() != "- [ ] " || !task.Block {
			t.Errorf("task = %+v", task)
		}
		numbered, _ := reg.Lookup("numbered")
		if !numbered.Prefix.Value.IsGenerated() {
			t.Error("numbered prefix should be generated")
		}
		if got := numbered.Prefix.Value.Render("x", 2); got != "3) " {
			t.Errorf("numbered prefix line 2 = %q", got)
		}
		italic, _ := reg.Lookup("italic")
		if italic.Prefix.Value.Text() != "*" {
			t.Errorf("italic prefix = %q, want *", italic.Prefix.Value.Text())
		}
	})

	t.Run("bad pattern", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Formats: []config.FormatConfig{
			{Name: "p", Prefix: config.AffixConfig{Value: "x", Pattern: "(["}},
		}}
		if _, err := buildRegistry(cfg); !errors.Is(err, mdedit.ErrInvalidPattern) {
			t.Errorf("buildRegistry() error = %v, want ErrInvalidPattern", err)
		}
	})
}

func TestConfiguredFormatRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Formats: []config.FormatConfig{
		{Name: "task", Multiline: true, Prefix: config.AffixConfig{Value: "- [ ] ", Pattern: `- \[[ xX]\] `}},
	}}
	reg, err := buildRegistry(cfg)
	if err != nil {
		t.Fatal(err)
	}
	job := &editJob{cmd: cmdApply, format: "task", reg: reg}

	applied, err := editText(job, "a\nb")
	if err != nil {
		t.Fatal(err)
	}
	if applied.Text != "- [ ] a\n- [ ] b" {
		t.Fatalf("applied = %q", applied.Text)
	}

	// A checked item is still recognized by the pattern.
	job.cmd = cmdRemove
	removed, err := editText(job, "- [x] a\n- [ ] b")
	if err != nil {
		t.Fatal(err)
	}
	if removed.Text != "a\nb" || removed.Action != actionRemoved {
		t.Errorf("removed = %+v", removed)
	}
}

func TestResolveArgs(t *testing.T) {
	t.Parallel()

	withURL := &config.Config{Defaults: config.DefaultsConfig{URL: "https://d"}}

	if diff := cmp.Diff([]string{"a", "b"}, resolveArgs([]string{"a", "b"}, withURL)); diff != "" {
		t.Errorf("flag args mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"https://d"}, resolveArgs(nil, withURL)); diff != "" {
		t.Errorf("default url mismatch:\n%s", diff)
	}
	if got := resolveArgs(nil, config.DefaultConfig()); got != nil {
		t.Errorf("resolveArgs() = %v, want nil", got)
	}
}
