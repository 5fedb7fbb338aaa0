package sitekit

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/alnah/go-sitekit/internal/pipeline"
)

// Media types accepted by MinifyEngine.
const (
	MediaCSS  = "text/css"
	MediaJS   = "application/javascript"
	MediaSVG  = "image/svg+xml"
	MediaHTML = "text/html"
)

// Compile-time interface implementation checks.
var (
	_ Engine                        = (*TemplateEngine)(nil)
	_ Engine                        = (*MarkdownEngine)(nil)
	_ Engine                        = (*MinifyEngine)(nil)
	_ Engine                        = (*ScriptEngine)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
)

// textOf extracts text from engine content.
func textOf(content any) (string, error) {
	switch v := content.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedContent, content)
	}
}

// ---------------------------------------------------------------------------
// TemplateEngine
// ---------------------------------------------------------------------------

// TemplateEngine renders content as an html/template with the data map as dot.
// Parsed templates are cached per path and source text.
type TemplateEngine struct {
	funcs template.FuncMap
	cache sync.Map // path + "\x00" + source -> *template.Template
}

// NewTemplateEngine creates a template engine. funcs may be nil.
func NewTemplateEngine(funcs template.FuncMap) *TemplateEngine {
	return &TemplateEngine{funcs: funcs}
}

// RenderSync executes content against data.
func (e *TemplateEngine) RenderSync(content any, data map[string]any, p string) (any, error) {
	src, err := textOf(content)
	if err != nil {
		return nil, err
	}
	tmpl, err := e.parse(src, p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateExecute, p, err)
	}
	return buf.String(), nil
}

func (e *TemplateEngine) parse(src, p string) (*template.Template, error) {
	key := p + "\x00" + src
	if cached, ok := e.cache.Load(key); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(path.Base(p)).
		Option("missingkey=zero").
		Funcs(e.funcs).
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, p, err)
	}
	actual, _ := e.cache.LoadOrStore(key, tmpl)
	return actual.(*template.Template), nil
}

// ---------------------------------------------------------------------------
// MarkdownEngine
// ---------------------------------------------------------------------------

// MarkdownEngine converts Markdown content to an HTML fragment.
// The data map is not used.
type MarkdownEngine struct {
	converter pipeline.HTMLConverter
}

// NewMarkdownEngine creates a Markdown engine with the given options.
func NewMarkdownEngine(opts pipeline.MarkdownOptions) *MarkdownEngine {
	return &MarkdownEngine{converter: pipeline.NewGoldmarkConverter(opts)}
}

// RenderSync converts content to HTML.
func (e *MarkdownEngine) RenderSync(content any, _ map[string]any, p string) (any, error) {
	src, err := textOf(content)
	if err != nil {
		return nil, err
	}
	out, err := e.converter.ToHTML(context.Background(), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// MinifyEngine
// ---------------------------------------------------------------------------

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc(MediaCSS, css.Minify)
		minifier.AddFunc(MediaJS, js.Minify)
		minifier.AddFunc(MediaSVG, svg.Minify)
		minifier.AddFunc(MediaHTML, html.Minify)
	})
	return minifier
}

// MinifyEngine minifies content of a fixed media type.
type MinifyEngine struct {
	mediatype string
}

// NewMinifyEngine creates a minifier for mediatype (one of the Media constants).
func NewMinifyEngine(mediatype string) *MinifyEngine {
	return &MinifyEngine{mediatype: mediatype}
}

// RenderSync returns the minified content.
func (e *MinifyEngine) RenderSync(content any, _ map[string]any, p string) (any, error) {
	src, err := textOf(content)
	if err != nil {
		return nil, err
	}
	out, err := getMinifier().String(e.mediatype, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMinify, p, err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// ScriptEngine
// ---------------------------------------------------------------------------

// ScriptEngine compiles TypeScript and JSX to browser JavaScript with esbuild.
// The loader is chosen from the source path extension.
type ScriptEngine struct {
	minify bool
}

// NewScriptEngine creates a script engine. With minify set, whitespace,
// identifiers and syntax are minified.
func NewScriptEngine(minify bool) *ScriptEngine {
	return &ScriptEngine{minify: minify}
}

// RenderSync transforms content to ES2020 JavaScript.
func (e *ScriptEngine) RenderSync(content any, _ map[string]any, p string) (any, error) {
	src, err := textOf(content)
	if err != nil {
		return nil, err
	}

	result := api.Transform(src, api.TransformOptions{
		Loader:            scriptLoader(p),
		Target:            api.ES2020,
		Sourcefile:        p,
		MinifyWhitespace:  e.minify,
		MinifyIdentifiers: e.minify,
		MinifySyntax:      e.minify,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		var msgs []string
		for _, m := range result.Errors {
			if m.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
				continue
			}
			msgs = append(msgs, m.Text)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrScriptTransform, p, strings.Join(msgs, "; "))
	}
	return string(result.Code), nil
}

// scriptLoader maps the innermost script extension of p to an esbuild loader.
// Trailing non-script extensions such as ".src" are ignored.
func scriptLoader(p string) api.Loader {
	base := strings.ToLower(path.Base(p))
	for _, part := range strings.Split(base, ".")[1:] {
		switch part {
		case "ts", "mts", "cts":
			return api.LoaderTS
		case "tsx":
			return api.LoaderTSX
		case "jsx":
			return api.LoaderJSX
		}
	}
	return api.LoaderJS
}
