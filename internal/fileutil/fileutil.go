// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionNoDot         = errors.New("extension must start with a dot")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// ValidateExtension checks that a format extension is usable as a file name suffix.
// Multi-part extensions such as ".css.src" are accepted.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if !strings.HasPrefix(extension, ".") || extension == "." {
		return ErrExtensionNoDot
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// NormalizePath converts p to a clean, slash-separated path.
// Trailing separators are removed; "" becomes ".".
func NormalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// IsHiddenName reports whether a directory entry name is excluded from discovery.
// Names starting with "." (dotfiles) or "_" (private/draft entries) are hidden.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// HasExt reports whether p ends with ext, ignoring letter case.
func HasExt(p, ext string) bool {
	return len(p) >= len(ext) && strings.EqualFold(p[len(p)-len(ext):], ext)
}

// TrimExt removes ext from the end of p when present, ignoring letter case.
// Only the suffix is removed; inner occurrences are kept.
//
// Examples:
//   - ("/css/page.css.src", ".css.src") -> "/css/page"
//   - ("/comp/Card.MD", ".md")          -> "/comp/Card"
//   - ("/comp/card.md", ".tmpl")        -> "/comp/card.md"
func TrimExt(p, ext string) string {
	if ext == "" || !HasExt(p, ext) {
		return p
	}
	return p[:len(p)-len(ext)]
}

// BaseName returns the last element of the slash path p with ext trimmed.
func BaseName(p, ext string) string {
	return TrimExt(path.Base(p), ext)
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
//
// Examples:
//   - "site" -> false (name)
//   - "./sitekit.yaml" -> true (relative path)
//   - "/absolute/sitekit.yaml" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
