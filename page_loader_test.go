package sitekit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPageLoader_Load(t *testing.T) {
	t.Parallel()

	srcCSS := &Format{Ext: ".css.src", Asset: true, PageLoader: TextParser}
	plainJS := &Format{Ext: ".js", PageLoader: TextParser}
	componentOnly := &Format{Ext: ".tsx", ComponentLoader: TextParser, Engines: []Engine{identityEngine}}

	reader := newFakeReader().
		dir("/site").
		file("/site/page.css.src", map[string]any{"title": "x"}).
		file("/site/app.js", map[string]any{"content": "run()"}).
		file("/site/card.tsx", map[string]any{"content": "c"})

	tests := []struct {
		name   string
		path   string
		format *Format
		want   *Page
	}{
		{
			name:   "multi-part extension is dropped from the path",
			path:   "/site/page.css.src",
			format: srcCSS,
			want: &Page{
				Path:         "/site/page",
				LastModified: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Ext:          ".css.src",
				Asset:        true,
				BaseData:     map[string]any{"title": "x"},
			},
		},
		{
			name:   "non-asset format",
			path:   "/site/app.js",
			format: plainJS,
			want: &Page{
				Path:         "/site/app",
				LastModified: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Ext:          ".js",
				BaseData:     map[string]any{"content": "run()"},
			},
		},
		{
			name:   "format without page parser",
			path:   "/site/card.tsx",
			format: componentOnly,
			want:   nil,
		},
		{
			name:   "missing file",
			path:   "/site/gone.css.src",
			format: srcCSS,
			want:   nil,
		},
		{
			name:   "nil format",
			path:   "/site/app.js",
			format: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewPageLoader(reader).Load(context.Background(), tt.path, tt.format)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestPageLoader_Load_NoReadWhenNotEligible(t *testing.T) {
	t.Parallel()

	reader := newFakeReader().dir("/site").file("/site/card.tsx", map[string]any{"content": "c"})
	loader := NewPageLoader(reader)

	_, _ = loader.Load(context.Background(), "/site/card.tsx", &Format{Ext: ".tsx"})
	_, _ = loader.Load(context.Background(), "/site/none.tsx", &Format{Ext: ".tsx", PageLoader: TextParser})

	if got := reader.readPaths(); len(got) != 0 {
		t.Errorf("Read called for %v, want no reads", got)
	}
}

func TestPageLoader_Load_MetadataCopied(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	reader := newFakeReader().file("/remote.css", map[string]any{})
	reader.infos["/remote.css"] = &FileInfo{Remote: true, ModTime: modified, BirthTime: created}

	page, err := NewPageLoader(reader).Load(context.Background(), "/remote.css", &Format{Ext: ".css", PageLoader: TextParser})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !page.Remote {
		t.Error("Remote = false, want true")
	}
	if !page.Created.Equal(created) || !page.LastModified.Equal(modified) {
		t.Errorf("times = (%v, %v), want (%v, %v)", page.Created, page.LastModified, created, modified)
	}
	if page.BaseData == nil {
		t.Error("BaseData = nil, want empty map")
	}
}

func TestPageLoader_Load_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	reader := newFakeReader().file("/Theme.CSS", map[string]any{"content": "a"})

	page, err := NewPageLoader(reader).Load(context.Background(), "/Theme.CSS", &Format{Ext: ".css", PageLoader: TextParser})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if page.Path != "/Theme" {
		t.Errorf("Path = %q, want %q", page.Path, "/Theme")
	}
}

func TestPageLoader_Load_MismatchedFormatKeepsPath(t *testing.T) {
	t.Parallel()

	reader := newFakeReader().file("/notes.txt", map[string]any{"content": "a"})

	page, err := NewPageLoader(reader).Load(context.Background(), "/notes.txt", &Format{Ext: ".css", PageLoader: TextParser})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if page.Path != "/notes.txt" {
		t.Errorf("Path = %q, want %q", page.Path, "/notes.txt")
	}
	if page.Ext != ".css" {
		t.Errorf("Ext = %q, want %q", page.Ext, ".css")
	}
}

func TestPageLoader_Load_PagesAreIndependent(t *testing.T) {
	t.Parallel()

	reader := newFakeReader().file("/a.css", map[string]any{"content": "a"})
	loader := NewPageLoader(reader)
	format := &Format{Ext: ".css", PageLoader: TextParser}

	first, err := loader.Load(context.Background(), "/a.css", format)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	first.BaseData["content"] = "changed"

	second, err := loader.Load(context.Background(), "/a.css", format)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("Load() returned the same page twice")
	}
	if got := second.BaseData["content"]; got != "a" {
		t.Errorf("second BaseData[content] = %v, want %q", got, "a")
	}
}

func TestPageLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	errParse := errors.New("bad page")
	reader := newFakeReader().
		file("/broken.css", map[string]any{}).
		failRead("/broken.css", errParse)
	loader := NewPageLoader(reader)
	format := &Format{Ext: ".css", PageLoader: TextParser}

	if _, err := loader.Load(context.Background(), "/broken.css", format); err != errParse {
		t.Errorf("Load() error = %v, want %v unchanged", err, errParse)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loader.Load(ctx, "/broken.css", format); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with canceled context error = %v, want %v", err, context.Canceled)
	}

	if _, err := NewPageLoader(nil).Load(context.Background(), "/broken.css", format); !errors.Is(err, ErrNilReader) {
		t.Errorf("Load() with nil reader error = %v, want %v", err, ErrNilReader)
	}
}
