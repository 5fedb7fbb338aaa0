package sitekit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-sitekit/internal/fileutil"
)

// Option configures a Site.
type Option func(*Site)

// WithReader sets the reader used for all I/O. Defaults to the current directory.
func WithReader(r Reader) Option {
	return func(s *Site) {
		s.reader = r
	}
}

// WithFormats sets the format registry. Defaults to DefaultFormats().
func WithFormats(f *Formats) Option {
	return func(s *Site) {
		s.formats = f
	}
}

// WithLogger sets the logger shared with the loaders.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		s.logger = l
	}
}

// WithWorkers sets how many pages LoadPages reads concurrently.
// Zero or less picks a value from GOMAXPROCS. The reader must then be safe
// for concurrent use; FSReader is.
func WithWorkers(n int) Option {
	return func(s *Site) {
		s.workers = n
	}
}

// WithData sets the data inherited by every loaded component.
func WithData(data map[string]any) Option {
	return func(s *Site) {
		s.dir.Data = data
	}
}

// Site ties a reader, a format registry and a root component directory together.
// It drives the page traversal the page loader does not own.
type Site struct {
	reader  Reader
	formats *Formats
	logger  *slog.Logger
	dir     *Directory
	workers int

	components *ComponentLoader
	pages      *PageLoader
}

// NewSite creates a Site with the given options.
func NewSite(opts ...Option) *Site {
	s := &Site{dir: NewDirectory(nil)}
	for _, opt := range opts {
		opt(s)
	}
	if s.reader == nil {
		s.reader = NewOSReader(".")
	}
	if s.formats == nil {
		s.formats = DefaultFormats()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.dir.Data == nil {
		s.dir.Data = map[string]any{}
	}

	s.workers = ResolveWorkers(s.workers)

	s.components = NewComponentLoader(s.reader, s.formats, WithLoaderLogger(s.logger))
	s.pages = NewPageLoader(s.reader, WithLoaderLogger(s.logger))
	return s
}

// Directory returns the root component directory. Its Data may be modified
// between renders; components observe the change.
func (s *Site) Directory() *Directory {
	return s.dir
}

// Formats returns the site's format registry.
func (s *Site) Formats() *Formats {
	return s.formats
}

// LoadComponents loads the component tree at p into the root directory.
// Repeated calls merge into the same namespace.
func (s *Site) LoadComponents(ctx context.Context, p string) error {
	return s.components.Load(ctx, p, s.dir)
}

// Component looks up a component by dotted or slash-separated name.
func (s *Site) Component(name string) (*Component, bool) {
	return s.dir.Components.Lookup(name)
}

// Render renders the named component with props.
func (s *Site) Render(name string, props map[string]any) (string, error) {
	comp, ok := s.Component(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrComponentNotFound, name)
	}
	return comp.Render(props)
}

// LoadPage loads the file at p as a page using its most specific format.
// It returns nil and no error when no format matches or the format has no
// page parser.
func (s *Site) LoadPage(ctx context.Context, p string) (*Page, error) {
	p = fileutil.NormalizePath(p)
	format, ok := s.formats.Search(p)
	if !ok {
		s.logger.Debug("no format for page", "path", p)
		return nil, nil
	}
	return s.pages.Load(ctx, p, format)
}

// LoadPages walks the tree at root and loads every page-eligible file,
// skipping hidden entries and symbolic links. The walk is sequential; files
// are then loaded concurrently. Pages are sorted by path.
func (s *Site) LoadPages(ctx context.Context, root string) ([]*Page, error) {
	root = fileutil.NormalizePath(root)
	info, err := s.reader.Info(root)
	if err != nil {
		return nil, err
	}
	if info == nil || !info.IsDirectory {
		return nil, nil
	}

	var files []string
	if err := s.collectFiles(ctx, root, &files); err != nil {
		return nil, err
	}

	loaded := make([]*Page, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, file := range files {
		g.Go(func() error {
			page, err := s.LoadPage(gctx, file)
			if err != nil {
				return err
			}
			loaded[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := slices.DeleteFunc(loaded, func(p *Page) bool { return p == nil })
	slices.SortFunc(pages, func(a, b *Page) int {
		return strings.Compare(a.Path, b.Path)
	})
	s.logger.Debug("pages loaded", "root", root, "files", len(files), "pages", len(pages))
	return pages, nil
}

// collectFiles lists the visible regular files under dir, depth-first.
func (s *Site) collectFiles(ctx context.Context, dir string, files *[]string) error {
	for entry, err := range s.reader.ReadDir(dir) {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsSymlink || fileutil.IsHiddenName(entry.Name) {
			continue
		}
		child := joinPath(dir, entry.Name)
		if entry.IsDirectory {
			if err := s.collectFiles(ctx, child, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, child)
	}
	return nil
}

// RenderAsset threads a page's "content" through its format's engines and
// returns the generated asset. Pages whose format has no engines are returned
// unchanged.
func (s *Site) RenderAsset(page *Page) (string, error) {
	if page == nil {
		return "", ErrNilPage
	}
	format, ok := s.formats.Get(page.Ext)
	if !ok {
		return "", fmt.Errorf("%w: no format for %s", ErrInvalidFormat, page.Ext)
	}

	var out any = page.BaseData[contentKey]
	for _, engine := range format.Engines {
		var err error
		out, err = engine.RenderSync(out, page.BaseData, page.Path+page.Ext)
		if err != nil {
			return "", fmt.Errorf("rendering page %s: %w", page.Path, err)
		}
	}
	text, err := textOf(out)
	if err != nil {
		return "", fmt.Errorf("%w: page %s", ErrRenderOutput, page.Path)
	}
	return text, nil
}
