// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2rtf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2rtf) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2rtf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoInput returns hints for missing input errors.
func ForNoInput() string {
	return format("pass a markdown file or directory, or set input.defaultDir in config")
}

// ForOutputFile returns hints for output file write errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
