package sitekit

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFSReader_Info(t *testing.T) {
	t.Parallel()

	fs := newMemFS(t, map[string]string{"/site/a.md": "x"})
	if err := fs.Symlink("/site/a.md", "/site/link.md"); err != nil {
		t.Fatalf("Symlink() unexpected error: %v", err)
	}
	r := NewFSReader(fs)

	tests := []struct {
		path        string
		wantNil     bool
		wantDir     bool
		wantSymlink bool
	}{
		{path: "/site", wantDir: true},
		{path: "/site/a.md"},
		{path: "/site/link.md", wantSymlink: true},
		{path: "/site/missing.md", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			info, err := r.Info(tt.path)
			if err != nil {
				t.Fatalf("Info(%q) unexpected error: %v", tt.path, err)
			}
			if tt.wantNil {
				if info != nil {
					t.Errorf("Info(%q) = %+v, want nil", tt.path, info)
				}
				return
			}
			if info == nil {
				t.Fatalf("Info(%q) = nil, want metadata", tt.path)
			}
			if info.IsDirectory != tt.wantDir || info.IsSymlink != tt.wantSymlink {
				t.Errorf("Info(%q) = dir:%v symlink:%v, want dir:%v symlink:%v",
					tt.path, info.IsDirectory, info.IsSymlink, tt.wantDir, tt.wantSymlink)
			}
			if !info.BirthTime.IsZero() {
				t.Errorf("Info(%q).BirthTime = %v, want zero", tt.path, info.BirthTime)
			}
		})
	}
}

func TestFSReader_ReadDir(t *testing.T) {
	t.Parallel()

	fs := newMemFS(t, map[string]string{
		"/site/b.md":      "b",
		"/site/a.md":      "a",
		"/site/C/x.md":    "x",
		"/site/_draft.md": "d",
	})
	r := NewFSReader(fs)

	var names []string
	for entry, err := range r.ReadDir("/site") {
		if err != nil {
			t.Fatalf("ReadDir() unexpected error: %v", err)
		}
		names = append(names, entry.Name)
		if entry.Name == "C" && !entry.IsDirectory {
			t.Error("entry C IsDirectory = false, want true")
		}
	}
	if diff := cmp.Diff([]string{"C", "_draft.md", "a.md", "b.md"}, names); diff != "" {
		t.Errorf("ReadDir() order mismatch (-want +got):\n%s", diff)
	}

	t.Run("stops when the consumer stops", func(t *testing.T) {
		t.Parallel()

		count := 0
		for range r.ReadDir("/site") {
			count++
			break
		}
		if count != 1 {
			t.Errorf("iterations = %d, want 1", count)
		}
	})
}

func TestFSReader_Read(t *testing.T) {
	t.Parallel()

	fs := newMemFS(t, map[string]string{"/site/a.txt": "hello"})
	r := NewFSReader(fs)

	t.Run("passes content and path to the parser", func(t *testing.T) {
		t.Parallel()

		got, err := r.Read("/site/a.txt", ParserFunc(func(content []byte, p string) (map[string]any, error) {
			return map[string]any{"content": string(content), "path": p}, nil
		}))
		if err != nil {
			t.Fatalf("Read() unexpected error: %v", err)
		}
		if diff := cmp.Diff(map[string]any{"content": "hello", "path": "/site/a.txt"}, got); diff != "" {
			t.Errorf("Read() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("parser error is wrapped with the path", func(t *testing.T) {
		t.Parallel()

		errBad := errors.New("bad")
		_, err := r.Read("/site/a.txt", ParserFunc(func([]byte, string) (map[string]any, error) {
			return nil, errBad
		}))
		if !errors.Is(err, errBad) {
			t.Fatalf("Read() error = %v, want %v", err, errBad)
		}
		if !strings.HasPrefix(err.Error(), "parsing /site/a.txt") {
			t.Errorf("Read() error = %q, want parsing prefix", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := r.Read("/site/none.txt", TextParser)
		if err == nil || !strings.HasPrefix(err.Error(), "reading /site/none.txt") {
			t.Errorf("Read() error = %v, want reading error", err)
		}
	})
}
