package sitekit

import "errors"

// Sentinel errors for library operations.
var (
	// Component decoding and rendering errors.
	ErrInvalidComponentFile = errors.New("invalid component file")
	ErrUnsupportedContent   = errors.New("unsupported content type")
	ErrRenderOutput         = errors.New("render output is not text")
	ErrComponentNotFound    = errors.New("component not found")

	// Loader setup errors.
	ErrNilReader    = errors.New("reader is nil")
	ErrNilDirectory = errors.New("directory is nil")
	ErrNilPage      = errors.New("page is nil")

	// Format registry errors.
	ErrInvalidFormat = errors.New("invalid format")

	// Engine errors.
	ErrTemplateParse   = errors.New("template parse failed")
	ErrTemplateExecute = errors.New("template execution failed")
	ErrMinify          = errors.New("minification failed")
	ErrScriptTransform = errors.New("script transform failed")

	// Parser errors.
	ErrFrontmatter = errors.New("invalid frontmatter")
	ErrDataFile    = errors.New("invalid data file")
)
