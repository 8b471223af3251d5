// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// DefaultOutputName is the fallback when a sanitized output name is empty.
const DefaultOutputName = "combined.rtf"

// outputNameStripper removes characters that are unsafe in file names on
// common filesystems.
var outputNameStripper = strings.NewReplacer(
	"<", "", ">", "", ":", "", `"`, "",
	"/", "", `\`, "", "|", "", "?", "", "*", "",
)

// SanitizeOutputName makes a user-chosen output file name safe to write:
// unsafe characters are stripped, the .rtf suffix is appended if absent,
// and an empty result falls back to DefaultOutputName.
func SanitizeOutputName(name string) string {
	name = strings.TrimSpace(outputNameStripper.Replace(name))
	if name == "" || name == ".rtf" {
		return DefaultOutputName
	}
	if !strings.HasSuffix(strings.ToLower(name), ".rtf") {
		name += ".rtf"
	}
	return name
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
