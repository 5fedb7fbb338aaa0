package main

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	sitekit "github.com/alnah/go-sitekit"
)

// Notes:
// - Commands run against an in-memory filesystem injected through
//   Environment.NewReader; config files live on disk since LoadConfig reads
//   the OS filesystem.
// - resolveConfig reads SITEKIT_* variables; tests that set them are not
//   parallel and the parallel tests assume none are set.

var fixedNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

var siteFiles = map[string]string{
	"/_components/ui/Card.html": "---\ncss: \".card{padding:1rem}\"\n---\n" +
		`<div class="card">{{ .title }} - {{ .siteName }}</div>`,
	"/_components/note.md":     "**{{ .label }}**\n",
	"/_components/year.html":   `{{ date .now "YYYY" }}`,
	"/_components/broken.html": "{{ .x ",
	"/assets/style.css":        "body {\n  color : red ;\n}\n",
	"/assets/app.ts":           "const n: number = 1;\nconsole.log(n);\n",
	"/assets/_skip.css":        "a{}",
	"/assets/readme.md":        "# not a page",
}

// testEnv is an Environment writing to buffers, with the root passed to
// NewReader recorded.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	mu    sync.Mutex
	roots []string
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()

	fs := memfs.New()
	for name, content := range files {
		if err := util.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: writing %s: %v", name, err)
		}
	}

	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: te.stdout,
		Stderr: te.stderr,
		NewReader: func(root string) sitekit.Reader {
			te.mu.Lock()
			te.roots = append(te.roots, root)
			te.mu.Unlock()
			return sitekit.NewFSReader(chroot(t, fs, root))
		},
	}
	return te
}

func chroot(t *testing.T, fs billy.Filesystem, root string) billy.Filesystem {
	t.Helper()
	if root == "." || root == "" {
		return fs
	}
	sub, err := fs.Chroot(path.Join("/", root))
	if err != nil {
		t.Fatalf("chroot %s: %v", root, err)
	}
	return sub
}

func (te *testEnv) run(args ...string) int {
	return runMain(context.Background(), append([]string{"sitekit"}, args...), te.Environment)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}
