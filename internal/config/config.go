package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdedit/internal/fileutil"
	"github.com/alnah/go-mdedit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound       = errors.New("config file not found")
	ErrEmptyConfigName      = errors.New("config name cannot be empty")
	ErrConfigParse          = errors.New("failed to parse config")
	ErrFieldTooLong         = errors.New("field exceeds maximum length")
	ErrFieldRequired        = errors.New("field is required")
	ErrDuplicateName        = errors.New("duplicate format name")
	ErrTemplateNeedsPattern = errors.New("templated marker requires a pattern")
)

// Field length limits.
const (
	MaxNameLength    = 50   // "orderedList", "task"
	MaxMarkerLength  = 100  // "```\n", "- [ ] "
	MaxPatternLength = 500  // regular expression source
	MaxURLLength     = 2048 // Browser limit
	MaxFormats       = 100
)

// dirName is the per-user config directory below os.UserConfigDir.
const dirName = "go-mdedit"

// Placeholders a marker value may contain.
const (
	VarIndex  = "{i}"
	VarNumber = "{n}"
	VarArg    = "{arg}"
	VarLine   = "{line}"
)

// Config holds the CLI configuration: default arguments and custom formats.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Formats  []FormatConfig `yaml:"formats"`
}

// DefaultsConfig holds values used when the command line omits them.
type DefaultsConfig struct {
	URL string `yaml:"url"` // Extra argument for link and image
}

// FormatConfig declares a named format.
type FormatConfig struct {
	Name      string      `yaml:"name"`
	Prefix    AffixConfig `yaml:"prefix"`
	Suffix    AffixConfig `yaml:"suffix"`
	Multiline bool        `yaml:"multiline"`
	Block     bool        `yaml:"block"`
}

// AffixConfig is either a plain string (the literal marker) or a mapping
// with value, pattern and antipattern.
//
// Value may contain the placeholders {i} (zero-based line index), {n}
// (one-based), {arg} (first extra argument) and {line} (line text).
type AffixConfig struct {
	Value       string `yaml:"value"`
	Pattern     string `yaml:"pattern"`
	Antipattern string `yaml:"antipattern"`
}

// UnmarshalYAML accepts the string shorthand or the full mapping.
func (a *AffixConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok {
		*a = AffixConfig{Value: s}
		return nil
	}

	type plain AffixConfig
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*a = AffixConfig(p)
	return nil
}

// IsTemplate reports whether the value contains placeholders.
func (a AffixConfig) IsTemplate() bool {
	for _, v := range []string{VarIndex, VarNumber, VarArg, VarLine} {
		if strings.Contains(a.Value, v) {
			return true
		}
	}
	return false
}

// Validate checks field lengths, names and template patterns.
// Regular expressions are compiled later, when formats are registered.
func (c *Config) Validate() error {
	if err := validateFieldLength("defaults.url", c.Defaults.URL, MaxURLLength); err != nil {
		return err
	}
	if len(c.Formats) > MaxFormats {
		return fmt.Errorf("formats: %d entries, max %d", len(c.Formats), MaxFormats)
	}

	seen := make(map[string]bool, len(c.Formats))
	for i, f := range c.Formats {
		field := fmt.Sprintf("formats[%d]", i)
		if f.Name == "" {
			return fmt.Errorf("%w: %s.name", ErrFieldRequired, field)
		}
		if err := validateFieldLength(field+".name", f.Name, MaxNameLength); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, f.Name)
		}
		seen[f.Name] = true

		if err := f.Prefix.validate(field + ".prefix"); err != nil {
			return err
		}
		if err := f.Suffix.validate(field + ".suffix"); err != nil {
			return err
		}
	}
	return nil
}

func (a AffixConfig) validate(field string) error {
	if err := validateFieldLength(field+".value", a.Value, MaxMarkerLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".pattern", a.Pattern, MaxPatternLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".antipattern", a.Antipattern, MaxPatternLength); err != nil {
		return err
	}
	if a.IsTemplate() && a.Pattern == "" {
		return fmt.Errorf("%w: %s (%q)", ErrTemplateNeedsPattern, field, a.Value)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: built-in formats only.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		found, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &cfg, nil
}

// NotFoundError lists the paths searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-mdedit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, dirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Searched: tried}
}
