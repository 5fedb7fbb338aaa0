package sitekit

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FileInfo is the path metadata the loaders need.
// Zero times mean the reader cannot provide them.
type FileInfo struct {
	IsDirectory bool
	IsSymlink   bool
	Remote      bool
	ModTime     time.Time
	BirthTime   time.Time
}

// DirEntry is a single directory listing entry.
type DirEntry struct {
	Name        string
	IsDirectory bool
	IsSymlink   bool
}

// Reader is the I/O boundary of the loaders.
type Reader interface {
	// Info returns metadata for path, or nil and no error when it does not exist.
	Info(path string) (*FileInfo, error)

	// ReadDir lazily enumerates the entries of a directory. The sequence can be
	// consumed once; it stops after yielding the first error.
	ReadDir(path string) iter.Seq2[DirEntry, error]

	// Read loads the file at path and decodes it with p.
	Read(path string, p Parser) (map[string]any, error)
}

// FSReader implements Reader over a billy filesystem.
// Entries are listed in lexical name order.
type FSReader struct {
	fs billy.Filesystem
}

// Compile-time interface check.
var _ Reader = (*FSReader)(nil)

// NewFSReader creates a Reader over fs.
func NewFSReader(fs billy.Filesystem) *FSReader {
	return &FSReader{fs: fs}
}

// NewOSReader creates a Reader over the local directory root.
// Paths given to the reader are resolved relative to root.
func NewOSReader(root string) *FSReader {
	return NewFSReader(osfs.New(root))
}

// Info returns metadata for p without following a final symlink.
func (r *FSReader) Info(p string) (*FileInfo, error) {
	fi, err := r.lstat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	return &FileInfo{
		IsDirectory: fi.IsDir(),
		IsSymlink:   fi.Mode()&fs.ModeSymlink != 0,
		ModTime:     fi.ModTime(),
	}, nil
}

// ReadDir lists p in name order and yields entries one at a time.
func (r *FSReader) ReadDir(p string) iter.Seq2[DirEntry, error] {
	return func(yield func(DirEntry, error) bool) {
		infos, err := r.fs.ReadDir(p)
		if err != nil {
			yield(DirEntry{}, fmt.Errorf("listing %s: %w", p, err))
			return
		}
		slices.SortFunc(infos, func(a, b os.FileInfo) int {
			return strings.Compare(a.Name(), b.Name())
		})
		for _, fi := range infos {
			entry := DirEntry{
				Name:        fi.Name(),
				IsDirectory: fi.IsDir(),
				IsSymlink:   fi.Mode()&fs.ModeSymlink != 0,
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Read loads p and decodes it with parser.
func (r *FSReader) Read(p string, parser Parser) (map[string]any, error) {
	content, err := util.ReadFile(r.fs, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	data, err := parser.Parse(content, p)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", p, err)
	}
	return data, nil
}

func (r *FSReader) lstat(p string) (os.FileInfo, error) {
	if sl, ok := r.fs.(billy.Symlink); ok {
		return sl.Lstat(p)
	}
	return r.fs.Stat(p)
}

// joinPath joins a directory and an entry name into a slash path.
func joinPath(dir, name string) string {
	return path.Join(dir, name)
}
