// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForConfigNotFound suggests --config and, when one of the searched paths
// is the per-user location, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "go-mdedit/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForUnknownFormat lists the format names that can be used instead.
func ForUnknownFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + " (see mdedit formats)")
}

// ForUnknownStyle lists the built-in page styles.
func ForUnknownStyle(builtin []string) string {
	if len(builtin) == 0 {
		return ""
	}
	return formatHints([]string{
		"built-in styles: " + strings.Join(builtin, ", "),
		"custom styles live in <asset-path>/styles/<name>.css",
	})
}

// ForInvalidRange states the valid offsets for a document of n runes.
func ForInvalidRange(n int) string {
	return format("ranges are START:END rune offsets between 0 and " + strconv.Itoa(n))
}

// ForTemplatePattern explains why a templated marker needs a pattern.
func ForTemplatePattern() string {
	return format("add a pattern so existing markers can be recognized, e.g. pattern: '[0-9]+\\) '")
}

// ForNoInput suggests how to provide a document.
func ForNoInput() string {
	return format("pass a file or pipe the document on stdin")
}

// ForMissingURL reminds that links and images take their target as an argument.
func ForMissingURL() string {
	return formatHints([]string{"pass the target with --arg", "or set MDEDIT_URL or defaults.url"})
}

// filepathSlash makes Windows separators comparable.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
