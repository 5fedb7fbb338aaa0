package sitekit

import (
	"fmt"
	"iter"
	"maps"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// Notes:
// - fakeReader lists directory entries in the exact order they were added,
//   so overwrite tests control processing order explicitly.
// - Parsers are never invoked by fakeReader: Read returns the data registered
//   for the path, mirroring how the loaders treat parsers as opaque.

// fakeReader is an in-memory Reader with explicit listing order.
type fakeReader struct {
	mu      sync.Mutex
	infos   map[string]*FileInfo
	dirs    map[string][]DirEntry
	files   map[string]map[string]any
	readErr map[string]error
	reads   []string
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		infos:   map[string]*FileInfo{},
		dirs:    map[string][]DirEntry{},
		files:   map[string]map[string]any{},
		readErr: map[string]error{},
	}
}

// dir registers a directory and appends it to its parent's listing.
func (r *fakeReader) dir(p string) *fakeReader {
	r.infos[p] = &FileInfo{IsDirectory: true}
	if _, ok := r.dirs[p]; !ok {
		r.dirs[p] = nil
	}
	r.link(p, DirEntry{Name: path.Base(p), IsDirectory: true})
	return r
}

// file registers a file whose parsed content is data.
func (r *fakeReader) file(p string, data map[string]any) *fakeReader {
	r.infos[p] = &FileInfo{ModTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	r.files[p] = data
	r.link(p, DirEntry{Name: path.Base(p)})
	return r
}

// symlink registers a symbolic link entry.
func (r *fakeReader) symlink(p string, data map[string]any) *fakeReader {
	r.infos[p] = &FileInfo{IsSymlink: true}
	r.files[p] = data
	r.link(p, DirEntry{Name: path.Base(p), IsSymlink: true})
	return r
}

// failRead makes Read of p fail with err.
func (r *fakeReader) failRead(p string, err error) *fakeReader {
	r.readErr[p] = err
	return r
}

func (r *fakeReader) link(p string, e DirEntry) {
	parent := path.Dir(p)
	if parent == p {
		return
	}
	r.dirs[parent] = append(r.dirs[parent], e)
}

func (r *fakeReader) Info(p string) (*FileInfo, error) {
	info, ok := r.infos[p]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

func (r *fakeReader) ReadDir(p string) iter.Seq2[DirEntry, error] {
	return func(yield func(DirEntry, error) bool) {
		entries, ok := r.dirs[p]
		if !ok {
			yield(DirEntry{}, fmt.Errorf("listing %s: not a directory", p))
			return
		}
		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (r *fakeReader) Read(p string, _ Parser) (map[string]any, error) {
	r.mu.Lock()
	r.reads = append(r.reads, p)
	r.mu.Unlock()

	if err, ok := r.readErr[p]; ok {
		return nil, err
	}
	data, ok := r.files[p]
	if !ok {
		return nil, fmt.Errorf("reading %s: no such file", p)
	}
	return maps.Clone(data), nil
}

func (r *fakeReader) readPaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reads...)
}

// identityEngine returns its content unchanged.
var identityEngine = EngineFunc(func(content any, _ map[string]any, _ string) (any, error) {
	return content, nil
})

// recordingEngine stores the data map of its last call.
type recordingEngine struct {
	mu   sync.Mutex
	last map[string]any
}

func (e *recordingEngine) RenderSync(content any, data map[string]any, _ string) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = data
	return content, nil
}

func (e *recordingEngine) data() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// componentFormats returns a registry with a single ".tsx" component format.
func componentFormats(t *testing.T, engines ...Engine) *Formats {
	t.Helper()
	formats := NewFormats()
	if err := formats.Set(&Format{Ext: ".tsx", ComponentLoader: TextParser, Engines: engines}); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	return formats
}

// newMemFS creates an in-memory filesystem holding files.
func newMemFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		if err := fs.MkdirAll(path.Dir(name), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) unexpected error: %v", name, err)
		}
		if err := util.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) unexpected error: %v", name, err)
		}
	}
	return fs
}
