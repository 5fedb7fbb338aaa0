// Package pipeline implements the Markdown-to-HTML stage used by the markdown engine.
//
// This package handles two steps:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//
// The output is a fragment, not a document: components are embedded in pages
// assembled further down the build, so no <html> or <body> wrapper is added.
package pipeline
