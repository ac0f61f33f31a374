package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/config"
)

// buildRegistry returns the default registry extended with, or overridden
// by, the formats declared in cfg.
func buildRegistry(cfg *config.Config) (*mdedit.Registry, error) {
	if len(cfg.Formats) == 0 {
		return mdedit.DefaultRegistry(), nil
	}

	formats := make([]mdedit.Format, 0, len(cfg.Formats))
	for _, fc := range cfg.Formats {
		formats = append(formats, toFormat(fc))
	}

	reg, err := mdedit.DefaultRegistry().With(formats...)
	if err != nil {
		return nil, fmt.Errorf("registering configured formats: %w", err)
	}
	return reg, nil
}

func toFormat(fc config.FormatConfig) mdedit.Format {
	return mdedit.Format{
		Name:      fc.Name,
		Prefix:    toAffix(fc.Prefix),
		Suffix:    toAffix(fc.Suffix),
		Multiline: fc.Multiline,
		Block:     fc.Block,
	}
}

func toAffix(ac config.AffixConfig) mdedit.Affix {
	a := mdedit.Affix{
		Value:       mdedit.Literal(ac.Value),
		Pattern:     ac.Pattern,
		Antipattern: ac.Antipattern,
	}
	if ac.IsTemplate() {
		a.Value = mdedit.Generate(expandTemplate(ac.Value))
	}
	return a
}

// expandTemplate returns a generator substituting the config placeholders.
func expandTemplate(tmpl string) mdedit.Generator {
	return func(line string, index int, args ...string) string {
		var arg string
		if len(args) > 0 {
			arg = args[0]
		}
		return strings.NewReplacer(
			config.VarIndex, strconv.Itoa(index),
			config.VarNumber, strconv.Itoa(index+1),
			config.VarArg, arg,
			config.VarLine, line,
		).Replace(tmpl)
	}
}

// resolveArgs returns the marker arguments: --arg values, or the
// configured default URL when none were given.
func resolveArgs(flagArgs []string, cfg *config.Config) []string {
	if len(flagArgs) > 0 {
		return flagArgs
	}
	if cfg.Defaults.URL != "" {
		return []string{cfg.Defaults.URL}
	}
	return nil
}
