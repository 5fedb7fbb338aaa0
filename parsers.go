package sitekit

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// Compile-time interface implementation checks.
var (
	_ Parser = ParserFunc(nil)
	_ Parser = (*JSONParser)(nil)
)

// contentKey is where text-bearing parsers store the file body.
const contentKey = "content"

// FrontmatterParser reads an optional leading "---" YAML block as data and
// stores the remaining body under "content". The body replaces any content
// key declared in the block.
var FrontmatterParser = ParserFunc(func(content []byte, _ string) (map[string]any, error) {
	head, body, err := yamlutil.SplitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	data, err := yamlutil.UnmarshalMap(head)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	data[contentKey] = string(body)
	return data, nil
})

// YAMLParser reads the whole file as a YAML mapping.
var YAMLParser = ParserFunc(func(content []byte, _ string) (map[string]any, error) {
	data, err := yamlutil.UnmarshalMap(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFile, err)
	}
	return data, nil
})

// TextParser stores the raw file under "content".
var TextParser = ParserFunc(func(content []byte, _ string) (map[string]any, error) {
	return map[string]any{contentKey: string(content)}, nil
})

// JSONParser reads a JSON object. With a selector, the object is taken from
// the first match of that JSONPath expression instead of the document root.
type JSONParser struct {
	selector jp.Expr
}

// NewJSONParser creates a JSON parser. An empty selector uses the root.
func NewJSONParser(selector string) (*JSONParser, error) {
	if selector == "" {
		return &JSONParser{}, nil
	}
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	return &JSONParser{selector: x}, nil
}

// Parse decodes content and returns the selected object.
func (p *JSONParser) Parse(content []byte, _ string) (map[string]any, error) {
	doc, err := oj.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFile, err)
	}
	if p.selector != nil {
		matches := p.selector.Get(doc)
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s matched nothing", ErrDataFile, p.selector)
		}
		doc = matches[0]
	}
	data, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrDataFile, doc)
	}
	return data, nil
}
