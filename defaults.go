package sitekit

import (
	"html/template"
	"maps"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/pipeline"
)

// MarkdownOptions configures the Markdown engine of the default formats.
type MarkdownOptions = pipeline.MarkdownOptions

// FormatOption configures DefaultFormats.
type FormatOption func(*formatConfig)

type formatConfig struct {
	minify   bool
	markdown MarkdownOptions
	funcs    template.FuncMap
}

// WithMinify enables or disables minification of CSS, JS, SVG and compiled
// scripts. Enabled by default.
func WithMinify(enabled bool) FormatOption {
	return func(c *formatConfig) {
		c.minify = enabled
	}
}

// WithMarkdownOptions sets the Markdown conversion options.
func WithMarkdownOptions(opts MarkdownOptions) FormatOption {
	return func(c *formatConfig) {
		c.markdown = opts
	}
}

// WithTemplateFuncs adds functions available to component templates.
// They are merged over the built-in "date" function.
func WithTemplateFuncs(funcs template.FuncMap) FormatOption {
	return func(c *formatConfig) {
		c.funcs = funcs
	}
}

// DefaultFormats returns a registry with the built-in formats:
//
//	.md            component: frontmatter, template then markdown
//	.html .tmpl    component: frontmatter, template
//	.yaml .yml     component: yaml document, template
//	.json          component: json object, template
//	.css .js .svg  asset page: text, minified
//	.ts            asset page: text, compiled to JavaScript
func DefaultFormats(opts ...FormatOption) *Formats {
	cfg := formatConfig{minify: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	funcs := template.FuncMap{"date": formatDate}
	maps.Copy(funcs, cfg.funcs)
	tmpl := NewTemplateEngine(funcs)
	md := NewMarkdownEngine(cfg.markdown)
	jsonParser, _ := NewJSONParser("")

	minified := func(mediatype string) []Engine {
		if !cfg.minify {
			return nil
		}
		return []Engine{NewMinifyEngine(mediatype)}
	}

	formats := NewFormats()
	for _, f := range []*Format{
		{Ext: ".md", ComponentLoader: FrontmatterParser, Engines: []Engine{tmpl, md}},
		{Ext: ".html", ComponentLoader: FrontmatterParser, Engines: []Engine{tmpl}},
		{Ext: ".tmpl", ComponentLoader: FrontmatterParser, Engines: []Engine{tmpl}},
		{Ext: ".yaml", ComponentLoader: YAMLParser, Engines: []Engine{tmpl}},
		{Ext: ".yml", ComponentLoader: YAMLParser, Engines: []Engine{tmpl}},
		{Ext: ".json", ComponentLoader: jsonParser, Engines: []Engine{tmpl}},
		{Ext: ".css", Asset: true, PageLoader: TextParser, Engines: minified(MediaCSS)},
		{Ext: ".js", Asset: true, PageLoader: TextParser, Engines: minified(MediaJS)},
		{Ext: ".svg", Asset: true, PageLoader: TextParser, Engines: minified(MediaSVG)},
		{Ext: ".ts", Asset: true, PageLoader: TextParser, Engines: []Engine{NewScriptEngine(cfg.minify)}},
	} {
		// Built-in extensions are always valid.
		_ = formats.Set(f)
	}
	return formats
}

// formatDate backs the "date" template function:
//
//	{{ date .published "long" }}
func formatDate(v any, format string) (string, error) {
	t, err := dateutil.Parse(v)
	if err != nil {
		return "", err
	}
	return dateutil.Format(t, format)
}
