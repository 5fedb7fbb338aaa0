package sitekit

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/alnah/go-sitekit/internal/fileutil"
)

// Parser turns raw file content into data. The parser is opaque to the loaders:
// component parsers must yield the ComponentFile keys (name, content, css, js,
// inheritData); page parsers may yield anything.
type Parser interface {
	Parse(content []byte, path string) (map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(content []byte, path string) (map[string]any, error)

// Parse calls f(content, path).
func (f ParserFunc) Parse(content []byte, path string) (map[string]any, error) {
	return f(content, path)
}

// Engine is a synchronous content transformer in a format's render chain.
// Implementations must not perform I/O and must be safe for concurrent use.
// path identifies the source file for diagnostics and relative resolution.
type Engine interface {
	RenderSync(content any, data map[string]any, path string) (any, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(content any, data map[string]any, path string) (any, error)

// RenderSync calls f(content, data, path).
func (f EngineFunc) RenderSync(content any, data map[string]any, path string) (any, error) {
	return f(content, data, path)
}

// Format binds a file extension to its parsing and rendering capabilities.
// A nil parser means the format does not support that kind of loading.
type Format struct {
	Ext             string // Including the leading dot, e.g. ".md" or ".css.src"
	Asset           bool   // Pages of this format are generated assets
	ComponentLoader Parser
	PageLoader      Parser
	Engines         []Engine // Applied in order
}

// Formats is an extension-keyed registry of formats.
// Extensions are matched case-insensitively.
type Formats struct {
	entries map[string]*Format
}

// NewFormats creates an empty registry.
func NewFormats() *Formats {
	return &Formats{entries: make(map[string]*Format)}
}

// Set registers f, replacing any format with the same extension.
// Returns ErrInvalidFormat if f is nil or its extension is malformed.
func (r *Formats) Set(f *Format) error {
	if f == nil {
		return fmt.Errorf("%w: nil format", ErrInvalidFormat)
	}
	if err := fileutil.ValidateExtension(f.Ext); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidFormat, f.Ext, err)
	}
	r.entries[strings.ToLower(f.Ext)] = f
	return nil
}

// Get returns the format registered for ext.
func (r *Formats) Get(ext string) (*Format, bool) {
	f, ok := r.entries[strings.ToLower(ext)]
	return f, ok
}

// Delete removes the format registered for ext.
func (r *Formats) Delete(ext string) {
	delete(r.entries, strings.ToLower(ext))
}

// Exts returns the registered extensions, longest first, then alphabetically.
func (r *Formats) Exts() []string {
	exts := make([]string, 0, len(r.entries))
	for ext := range r.entries {
		exts = append(exts, ext)
	}
	slices.SortFunc(exts, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return exts
}

// Search returns the most specific format for p: the registered extension
// with the longest case-insensitive suffix match on the file name.
// A file named exactly like the extension (e.g. ".md") does not match.
func (r *Formats) Search(p string) (*Format, bool) {
	base := strings.ToLower(path.Base(p))
	for _, ext := range r.Exts() {
		if len(base) > len(ext) && strings.HasSuffix(base, ext) {
			return r.entries[ext], true
		}
	}
	return nil, false
}
