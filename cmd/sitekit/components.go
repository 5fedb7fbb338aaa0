package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/hints"
)

// runComponents lists the component tree, or prints its combined assets.
func runComponents(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseComponentsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(flags.common, &flags.site, env)
	if err != nil {
		return err
	}

	site := buildSite(cfg, env, newLogger(env.Stderr, flags.common))
	if err := site.LoadComponents(ctx, sitePath(cfg.Source.Components)); err != nil {
		return fmt.Errorf("loading components: %w", err)
	}
	components := site.Directory().Components

	if flags.css || flags.js {
		css, js := components.Assets()
		if flags.css {
			writeAssets(env.Stdout, css)
		}
		if flags.js {
			writeAssets(env.Stdout, js)
		}
		return nil
	}

	count := printComponentTable(env.Stdout, components)
	if count == 0 && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "no components in %s%s\n", cfg.Source.Components, hints.ForNoComponents())
	}
	return nil
}

// printComponentTable renders one row per component and returns the row count.
func printComponentTable(w io.Writer, components *sitekit.Components) int {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Source", "CSS", "JS"})

	count := 0
	_ = components.Walk(func(p []string, c *sitekit.Component) error {
		t.AppendRow(table.Row{strings.Join(p, "."), displayPath(c.Path), assetSize(c.CSS), assetSize(c.JS)})
		count++
		return nil
	})
	if count == 0 {
		return 0
	}

	t.Render()
	fmt.Fprintf(w, "(%d components)\n", count)
	return count
}

func assetSize(s string) string {
	if s == "" {
		return "-"
	}
	return fmt.Sprintf("%d B", len(s))
}

func writeAssets(w io.Writer, assets []string) {
	for _, a := range assets {
		fmt.Fprintln(w, strings.TrimRight(a, "\n"))
	}
}
