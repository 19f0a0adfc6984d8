// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory when it was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-wiki2md") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available preview styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoInput explains how to name inputs when none were given.
func ForNoInput() string {
	return format("pass files or directories, or set input.defaultDir in the config")
}

// ForUnsupportedExtension lists the accepted wikitext extensions.
func ForUnsupportedExtension(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("accepted extensions: " + strings.Join(extensions, ", "))
}

// ForTemplateName explains the infobox template name format.
func ForTemplateName() string {
	return format("use the template name without braces, e.g. Faginfo")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
