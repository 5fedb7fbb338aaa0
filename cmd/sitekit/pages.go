package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	sitekit "github.com/alnah/go-sitekit"
)

// runPages lists every page under the pages directory, or under the given one.
func runPages(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parsePagesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(flags.common, &flags.site, env)
	if err != nil {
		return err
	}

	dir := cfg.Source.Pages
	if len(rest) == 1 {
		dir = rest[0]
	}

	site := buildSite(cfg, env, newLogger(env.Stderr, flags.common))
	pages, err := site.LoadPages(ctx, sitePath(dir))
	if err != nil {
		return fmt.Errorf("loading pages: %w", err)
	}
	if len(pages) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "no pages in %s\n", dir)
		}
		return nil
	}

	return printPageTable(env.Stdout, pages, cfg.Dates.Format)
}

func printPageTable(w io.Writer, pages []*sitekit.Page, dateFormat string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Ext", "Asset", "Modified"})

	for _, p := range pages {
		modified, err := formatTime(p.LastModified, dateFormat)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{displayPath(p.Path), p.Ext, p.Asset, modified})
	}

	t.Render()
	fmt.Fprintf(w, "(%d pages)\n", len(pages))
	return nil
}
