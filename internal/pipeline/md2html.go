package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// MarkdownOptions tunes the Goldmark renderer.
type MarkdownOptions struct {
	HardWraps bool   // Treat newlines as <br>
	Unsafe    bool   // Keep raw HTML blocks from the source
	Style     string // Chroma style name; empty keeps CSS classes only
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter(opts MarkdownOptions) *GoldmarkConverter {
	highlight := []highlighting.Option{
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(opts.Style == ""), // CSS classes unless a style is inlined
		),
	}
	if opts.Style != "" {
		highlight = append(highlight, highlighting.WithStyle(opts.Style))
	}

	rendererOpts := []goldmark.Option{}
	var htmlOpts []renderer.Option
	if opts.HardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	if opts.Unsafe {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	if len(htmlOpts) > 0 {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(htmlOpts...))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(highlight...),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}, rendererOpts...)...)

	return &GoldmarkConverter{md: md, preprocessor: &CommonMarkPreprocessor{}}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = c.preprocessor.PreprocessMarkdown(ctx, content)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
