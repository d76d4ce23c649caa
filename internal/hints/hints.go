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

// ForUnreadableOutput returns a hint for RTF files that open garbled.
func ForUnreadableOutput() string {
	return format("open the .rtf with Word or LibreOffice; plain-text editors show raw control words")
}

// format renders a single hint with standard indentation.
func format(hint string) string {
	return "\n  hint: " + hint
}
