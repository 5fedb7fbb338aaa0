package sitekit

import (
	"fmt"
	"maps"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// ComponentFile is the on-disk shape of a component as produced by a format's
// component parser. Content is opaque to the loader; only the format's engines
// interpret it.
type ComponentFile struct {
	Name        *string `mapstructure:"name"`        // nil = derive from the file name
	Content     any     `mapstructure:"content"`     // Raw template, passed to the first engine
	CSS         string  `mapstructure:"css"`         // Global CSS, inserted once per page
	JS          string  `mapstructure:"js"`          // Global JS, inserted once per page
	InheritData *bool   `mapstructure:"inheritData"` // nil = true
}

// inheritsData reports whether renders merge the owning directory's data.
func (f *ComponentFile) inheritsData() bool {
	return f.InheritData == nil || *f.InheritData
}

// decodeComponentFile maps parser output onto a ComponentFile.
// Unknown keys are ignored so parsers may carry extra metadata.
func decodeComponentFile(raw map[string]any) (*ComponentFile, error) {
	var file ComponentFile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &file,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidComponentFile, err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidComponentFile, err)
	}
	return &file, nil
}

// RenderFunc renders a component with the given props.
type RenderFunc func(props map[string]any) (string, error)

// Component is a named, renderable template fragment with optional global CSS/JS.
// A Component performs no I/O when rendered and is safe for concurrent use
// as long as the owning Directory's Data is not written concurrently.
type Component struct {
	Name string // Original case preserved; namespace keys are lower-cased
	Path string // Source file, empty for components built in code
	CSS  string
	JS   string

	render RenderFunc
}

// NewComponent creates a Component from a render function.
func NewComponent(name string, render RenderFunc) *Component {
	return &Component{Name: name, render: render}
}

// Render produces the component output for props.
func (c *Component) Render(props map[string]any) (string, error) {
	if c.render == nil {
		return "", fmt.Errorf("%w: component %q has no renderer", ErrRenderOutput, c.Name)
	}
	return c.render(props)
}

// Entry is a namespace value: either a *Components subtree or a *Component leaf.
// Use a type switch to tell them apart.
type Entry interface {
	namespaceEntry()
}

func (*Component) namespaceEntry()  {}
func (*Components) namespaceEntry() {}

// Directory is the aggregate populated by the component loader.
//
// Components loaded under a Directory read Data at render time through the
// Directory pointer, so assigning or mutating Data after loading changes the
// output of later renders. Callers must not write Data while renders run.
type Directory struct {
	Components *Components
	Data       map[string]any
}

// NewDirectory creates a Directory with an empty namespace.
// The data map is used as-is, not copied.
func NewDirectory(data map[string]any) *Directory {
	if data == nil {
		data = map[string]any{}
	}
	return &Directory{Components: NewComponents(), Data: data}
}

// renderData builds the data object handed to an engine.
// Props win over directory data on conflicting keys.
func (d *Directory) renderData(props map[string]any, inherit bool) map[string]any {
	var data map[string]any
	if inherit && d != nil {
		data = make(map[string]any, len(d.Data)+len(props))
		maps.Copy(data, d.Data)
	} else {
		data = make(map[string]any, len(props))
	}
	maps.Copy(data, props)
	return data
}

// Page is a source file that itself becomes a generated site asset.
// Zero LastModified or Created means the reader could not provide the value.
type Page struct {
	Path         string // Source path without the format extension
	LastModified time.Time
	Created      time.Time
	Remote       bool
	Ext          string
	Asset        bool
	BaseData     map[string]any
}
