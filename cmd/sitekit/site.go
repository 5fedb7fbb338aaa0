package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/config"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrWriteOutput     = errors.New("failed to write output")
	ErrUnsupportedFile = errors.New("not a page (missing file or no page format)")
	ErrInvalidProps    = errors.New("invalid props")
)

// nowKey is the site data key holding the command start time.
const nowKey = "now"

// resolveConfig loads the config file, then applies env vars and flags.
// The file comes from --config, else SITEKIT_CONFIG, else defaults are used.
func resolveConfig(common commonFlags, site *siteFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(site, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text logger on w: errors only with --quiet,
// every loaded file with --verbose, warnings otherwise.
func newLogger(w io.Writer, common commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case common.quiet:
		level = slog.LevelError
	case common.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildSite creates a Site rooted at cfg.Source.Root.
// The site data gets a "now" entry unless the config defines one.
func buildSite(cfg *config.Config, env *Environment, logger *slog.Logger) *sitekit.Site {
	data := maps.Clone(cfg.Data)
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data[nowKey]; !ok {
		data[nowKey] = env.Now()
	}

	formats := sitekit.DefaultFormats(
		sitekit.WithMinify(cfg.Build.MinifyEnabled()),
		sitekit.WithMarkdownOptions(sitekit.MarkdownOptions{
			HardWraps: cfg.Markdown.HardWraps,
			Unsafe:    cfg.Markdown.Unsafe,
			Style:     cfg.Markdown.Style,
		}),
	)

	return sitekit.NewSite(
		sitekit.WithReader(env.NewReader(cfg.Source.Root)),
		sitekit.WithFormats(formats),
		sitekit.WithLogger(logger),
		sitekit.WithWorkers(cfg.Build.Workers),
		sitekit.WithData(data),
	)
}

// sitePath maps a path relative to the site root to a reader path.
func sitePath(rel string) string {
	return path.Join("/", filepath.ToSlash(rel))
}

// displayPath strips the leading slash sitePath adds.
func displayPath(p string) string {
	return strings.TrimPrefix(p, "/")
}

// componentNames returns the dotted names of every loaded component, sorted.
func componentNames(components *sitekit.Components) []string {
	var names []string
	_ = components.Walk(func(p []string, _ *sitekit.Component) error {
		names = append(names, strings.Join(p, "."))
		return nil
	})
	return names
}

// writeOutput writes content to the file at out, or to stdout when out is empty.
func writeOutput(env *Environment, out, content string) error {
	if out == "" {
		_, err := io.WriteString(env.Stdout, content)
		return err
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil { // #nosec G306 -- site output is public
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
