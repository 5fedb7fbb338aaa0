package sitekit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-sitekit/internal/fileutil"
)

// LoaderOption configures a ComponentLoader or PageLoader.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	logger *slog.Logger
}

// WithLoaderLogger sets the logger used for debug events (skipped entries,
// loaded components and pages). Loaders are silent by default.
func WithLoaderLogger(l *slog.Logger) LoaderOption {
	return func(c *loaderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func newLoaderConfig(opts []LoaderOption) loaderConfig {
	cfg := loaderConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ComponentLoader discovers components by walking a directory tree.
type ComponentLoader struct {
	reader  Reader
	formats *Formats
	logger  *slog.Logger
}

// NewComponentLoader creates a loader that reads through reader and
// dispatches files by extension through formats.
func NewComponentLoader(reader Reader, formats *Formats, opts ...LoaderOption) *ComponentLoader {
	cfg := newLoaderConfig(opts)
	if formats == nil {
		formats = NewFormats()
	}
	return &ComponentLoader{reader: reader, formats: formats, logger: cfg.logger}
}

// Load populates dir.Components from the tree rooted at p.
// A missing path, or one that is not a directory, is a no-op.
//
// Entries are processed one at a time in the order the reader lists them,
// including full descent into subdirectories, so of two names that differ only
// in case the one listed last wins. Hidden entries (leading "." or "_") and
// symbolic links are skipped, as are files without component support.
//
// Reader and parser errors abort the load and are returned unchanged.
// Components stored before the failure remain in dir.
func (l *ComponentLoader) Load(ctx context.Context, p string, dir *Directory) error {
	if l.reader == nil {
		return ErrNilReader
	}
	if dir == nil {
		return ErrNilDirectory
	}
	p = fileutil.NormalizePath(p)
	info, err := l.reader.Info(p)
	if err != nil {
		return err
	}
	if info == nil || !info.IsDirectory {
		l.logger.Debug("component root skipped", "path", p, "exists", info != nil)
		return nil
	}
	if dir.Components == nil {
		dir.Components = NewComponents()
	}
	return l.loadDirectory(ctx, p, dir, dir.Components)
}

func (l *ComponentLoader) loadDirectory(ctx context.Context, p string, dir *Directory, components *Components) error {
	for entry, err := range l.reader.ReadDir(p) {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsSymlink || fileutil.IsHiddenName(entry.Name) {
			l.logger.Debug("entry skipped", "path", joinPath(p, entry.Name))
			continue
		}

		child := joinPath(p, entry.Name)
		if entry.IsDirectory {
			if err := l.loadDirectory(ctx, child, dir, components.Sub(entry.Name)); err != nil {
				return err
			}
			continue
		}

		comp, err := l.loadComponent(child, dir)
		if err != nil {
			return err
		}
		if comp != nil {
			components.Set(comp.Name, comp)
		}
	}
	return nil
}

// loadComponent builds a component from a single file.
// It returns nil and no error when the file has no component support.
func (l *ComponentLoader) loadComponent(p string, dir *Directory) (*Component, error) {
	format, ok := l.formats.Search(p)
	if !ok || format.ComponentLoader == nil || len(format.Engines) == 0 {
		l.logger.Debug("file is not a component", "path", p)
		return nil, nil
	}

	raw, err := l.reader.Read(p, format.ComponentLoader)
	if err != nil {
		return nil, err
	}
	file, err := decodeComponentFile(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	name := fileutil.BaseName(p, format.Ext)
	if file.Name != nil && *file.Name != "" {
		name = *file.Name
	}

	comp := &Component{Name: name, Path: p, CSS: file.CSS, JS: file.JS}
	comp.render = newRenderFunc(name, p, file, format.Engines, dir)
	l.logger.Debug("component loaded", "name", name, "path", p, "engines", len(format.Engines))
	return comp, nil
}

// newRenderFunc threads content through engines. dir is captured by pointer:
// its Data is read on every call.
func newRenderFunc(name, p string, file *ComponentFile, engines []Engine, dir *Directory) RenderFunc {
	content := file.Content
	inherit := file.inheritsData()
	return func(props map[string]any) (string, error) {
		out := content
		for _, engine := range engines {
			var err error
			out, err = engine.RenderSync(out, dir.renderData(props, inherit), p)
			if err != nil {
				return "", fmt.Errorf("rendering component %s: %w", name, err)
			}
		}
		switch v := out.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		default:
			return "", fmt.Errorf("%w: component %s produced %T", ErrRenderOutput, name, out)
		}
	}
}
