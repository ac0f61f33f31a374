package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/config"
)

// runFormats lists the formats of the default registry and the config.
func runFormats(args []string, env *Environment) error {
	fs := newFlagSet(cmdFormats)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := parseFlagSet(fs, args); err != nil {
		if isHelp(err) {
			printFormatsUsage(env.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: formats takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	writeFormatTable(env.Stdout, formatRows(reg, cfg), env.TermWidth())
	return nil
}

// formatRows returns one table row per registered format, header first.
func formatRows(reg *mdedit.Registry, cfg *config.Config) [][]string {
	configured := make(map[string]bool, len(cfg.Formats))
	for _, f := range cfg.Formats {
		configured[f.Name] = true
	}

	rows := [][]string{{"NAME", "PREFIX", "SUFFIX", "LINES", "SOURCE"}}
	for _, name := range reg.Names() {
		f, _ := reg.Lookup(name)
		lines := "inline"
		switch {
		case f.Multiline && f.Block:
			lines = "multiline,block"
		case f.Multiline:
			lines = "multiline"
		case f.Block:
			lines = "block"
		}
		source := "builtin"
		if configured[name] {
			source = "config"
		}
		rows = append(rows, []string{name, markerLabel(f.Prefix), markerLabel(f.Suffix), lines, source})
	}
	return rows
}

// markerLabel shows a literal marker quoted and a generated one by the
// pattern that recognizes it.
func markerLabel(a mdedit.Affix) string {
	if a.Value.IsGenerated() {
		return "/" + a.Pattern + "/"
	}
	if t := a.Value.Text(); t != "" {
		return strconv.Quote(t)
	}
	return "-"
}

// writeFormatTable writes rows as aligned columns. Lines longer than width
// are truncated; width 0 disables truncation.
func writeFormatTable(w io.Writer, rows [][]string, width int) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.PrintableRuneWidth(cell))
		}
	}

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(padding.String(cell, uint(widths[i]+2)))
		}
		text := line.String()
		if width > 0 && ansi.PrintableRuneWidth(text) > width {
			text = truncate.StringWithTail(text, uint(width), "…")
		}
		fmt.Fprintln(w, text)
	}
}
