package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/hints"
	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// pageInfo is the YAML view of a loaded page.
type pageInfo struct {
	Path         string         `yaml:"path"`
	Ext          string         `yaml:"ext"`
	Asset        bool           `yaml:"asset"`
	Remote       bool           `yaml:"remote"`
	LastModified string         `yaml:"lastModified,omitempty"`
	Created      string         `yaml:"created,omitempty"`
	Size         int            `yaml:"size"`
	Data         map[string]any `yaml:"data,omitempty"`
}

// runPage loads one file as a page and prints its metadata or processed output.
func runPage(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parsePageFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(flags.common, &flags.site, env)
	if err != nil {
		return err
	}

	site := buildSite(cfg, env, newLogger(env.Stderr, flags.common))
	page, err := site.LoadPage(ctx, sitePath(rest[0]))
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}
	if page == nil {
		return fmt.Errorf("%w: %s%s", ErrUnsupportedFile, rest[0], hints.ForUnsupportedFile(pageExts(site.Formats())))
	}

	if flags.render {
		out, err := site.RenderAsset(page)
		if err != nil {
			return err
		}
		return writeOutput(env, flags.output, out)
	}

	info, err := newPageInfo(page, cfg.Dates.Format)
	if err != nil {
		return err
	}
	out, err := yamlutil.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}
	return writeOutput(env, flags.output, string(out))
}

// newPageInfo summarizes a page; "content" is reported by size only.
func newPageInfo(page *sitekit.Page, dateFormat string) (*pageInfo, error) {
	modified, err := formatTime(page.LastModified, dateFormat)
	if err != nil {
		return nil, err
	}
	created, err := formatTime(page.Created, dateFormat)
	if err != nil {
		return nil, err
	}

	data := maps.Clone(page.BaseData)
	size := 0
	if content, ok := data["content"].(string); ok {
		size = len(content)
		delete(data, "content")
	}
	if len(data) == 0 {
		data = nil
	}

	return &pageInfo{
		Path:         displayPath(page.Path),
		Ext:          page.Ext,
		Asset:        page.Asset,
		Remote:       page.Remote,
		LastModified: modified,
		Created:      created,
		Size:         size,
		Data:         data,
	}, nil
}

func formatTime(t time.Time, format string) (string, error) {
	s, err := dateutil.Format(t, format)
	if err != nil {
		return "", fmt.Errorf("formatting date: %w", err)
	}
	return s, nil
}

// pageExts lists the extensions whose format can load pages.
func pageExts(formats *sitekit.Formats) []string {
	var exts []string
	for _, ext := range formats.Exts() {
		if f, ok := formats.Get(ext); ok && f.PageLoader != nil {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}
