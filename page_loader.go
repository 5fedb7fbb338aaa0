package sitekit

import (
	"context"
	"log/slog"
	"maps"

	"github.com/alnah/go-sitekit/internal/fileutil"
)

// PageLoader loads single source files that produce site assets.
// It does not traverse directories; callers invoke it per candidate file.
type PageLoader struct {
	reader Reader
	logger *slog.Logger
}

// NewPageLoader creates a page loader reading through reader.
func NewPageLoader(reader Reader, opts ...LoaderOption) *PageLoader {
	cfg := newLoaderConfig(opts)
	return &PageLoader{reader: reader, logger: cfg.logger}
}

// Load builds a Page for the file at p using its resolved format.
// It returns nil and no error when format has no page parser or p does not exist.
// Parser errors are returned unchanged.
func (l *PageLoader) Load(ctx context.Context, p string, format *Format) (*Page, error) {
	if l.reader == nil {
		return nil, ErrNilReader
	}
	if format == nil || format.PageLoader == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := l.reader.Info(p)
	if err != nil {
		return nil, err
	}
	if info == nil {
		l.logger.Debug("page source missing", "path", p)
		return nil, nil
	}

	page := &Page{
		Path:         fileutil.TrimExt(p, format.Ext),
		LastModified: info.ModTime,
		Created:      info.BirthTime,
		Remote:       info.Remote,
		Ext:          format.Ext,
		Asset:        format.Asset,
		BaseData:     map[string]any{},
	}

	data, err := l.reader.Read(p, format.PageLoader)
	if err != nil {
		return nil, err
	}
	maps.Copy(page.BaseData, data)

	l.logger.Debug("page loaded", "path", page.Path, "ext", page.Ext, "asset", page.Asset)
	return page, nil
}
