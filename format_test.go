package sitekit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormats_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  *Format
		wantErr error
	}{
		{name: "simple extension", format: &Format{Ext: ".md"}},
		{name: "multi-part extension", format: &Format{Ext: ".css.src"}},
		{name: "nil format", format: nil, wantErr: ErrInvalidFormat},
		{name: "empty extension", format: &Format{Ext: ""}, wantErr: ErrInvalidFormat},
		{name: "missing dot", format: &Format{Ext: "md"}, wantErr: ErrInvalidFormat},
		{name: "lone dot", format: &Format{Ext: "."}, wantErr: ErrInvalidFormat},
		{name: "path separator", format: &Format{Ext: ".a/b"}, wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewFormats().Set(tt.format)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Set() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormats_GetDeleteExts(t *testing.T) {
	t.Parallel()

	r := NewFormats()
	for _, ext := range []string{".md", ".CSS", ".css.src", ".js"} {
		if err := r.Set(&Format{Ext: ext}); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", ext, err)
		}
	}

	if f, ok := r.Get(".css"); !ok || f.Ext != ".CSS" {
		t.Errorf("Get(.css) = (%v, %v), want the .CSS format", f, ok)
	}

	want := []string{".css.src", ".css", ".js", ".md"}
	if diff := cmp.Diff(want, r.Exts()); diff != "" {
		t.Errorf("Exts() mismatch (-want +got):\n%s", diff)
	}

	r.Delete(".MD")
	if _, ok := r.Get(".md"); ok {
		t.Error("Get(.md) after Delete = true, want false")
	}
}

func TestFormats_Search(t *testing.T) {
	t.Parallel()

	r := NewFormats()
	for _, ext := range []string{".src", ".css.src", ".css", ".md"} {
		if err := r.Set(&Format{Ext: ext}); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", ext, err)
		}
	}

	tests := []struct {
		path    string
		wantExt string
	}{
		{path: "/site/page.css.src", wantExt: ".css.src"},
		{path: "/site/page.js.src", wantExt: ".src"},
		{path: "/site/PAGE.CSS", wantExt: ".css"},
		{path: "notes.md", wantExt: ".md"},
		{path: "/dir.md/readme.txt", wantExt: ""},
		{path: "/site/.md", wantExt: ""},
		{path: "/site/image.png", wantExt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			f, ok := r.Search(tt.path)
			if tt.wantExt == "" {
				if ok {
					t.Errorf("Search(%q) = %q, want no match", tt.path, f.Ext)
				}
				return
			}
			if !ok {
				t.Fatalf("Search(%q) found nothing, want %q", tt.path, tt.wantExt)
			}
			if f.Ext != tt.wantExt {
				t.Errorf("Search(%q) = %q, want %q", tt.path, f.Ext, tt.wantExt)
			}
		})
	}
}

func TestParserAndEngineFuncs(t *testing.T) {
	t.Parallel()

	p := ParserFunc(func(content []byte, path string) (map[string]any, error) {
		return map[string]any{"path": path, "size": len(content)}, nil
	})
	got, err := p.Parse([]byte("abc"), "/x")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"path": "/x", "size": 3}, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	e := EngineFunc(func(content any, data map[string]any, path string) (any, error) {
		return content.(string) + data["suffix"].(string) + path, nil
	})
	out, err := e.RenderSync("a", map[string]any{"suffix": "b"}, "c")
	if err != nil {
		t.Fatalf("RenderSync() unexpected error: %v", err)
	}
	if out != "abc" {
		t.Errorf("RenderSync() = %v, want %q", out, "abc")
	}
}
