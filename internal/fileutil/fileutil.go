// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Markdown source extensions recognized in directory mode.
const (
	ExtMarkdownShort = ".md"
	ExtMarkdownLong  = ".markdown"
)

// IsMarkdownFile reports whether the path has a Markdown extension.
func IsMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ExtMarkdownShort || ext == ExtMarkdownLong
}

// Stem returns the base name of a path without its extension, used as the
// default document title.
//
// Examples:
//   - "docs/guide.md" -> "guide"
//   - "art.txt"       -> "art"
//   - "README"        -> "README"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
