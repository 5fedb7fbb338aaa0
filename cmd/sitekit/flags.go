package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidArgs wraps flag parsing and argument count errors.
var ErrInvalidArgs = errors.New("invalid arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags locate the site and tune the build; they override config values.
type siteFlags struct {
	root       string
	components string
	pages      string
	workers    int
	noMinify   bool
	dateFormat string
}

// componentsFlags holds flags for the components command.
type componentsFlags struct {
	common commonFlags
	site   siteFlags
	css    bool
	js     bool
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common commonFlags
	site   siteFlags
	props  string
	set    []string
}

// pageFlags holds flags for the page command.
type pageFlags struct {
	common commonFlags
	site   siteFlags
	render bool
	output string
}

// pagesFlags holds flags for the pages command.
type pagesFlags struct {
	common commonFlags
	site   siteFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every loaded file")
}

// addSiteFlags adds site location and build flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.root, "root", "r", "", "site root directory")
	fs.StringVar(&f.components, "components", "", "components directory, relative to root")
	fs.StringVar(&f.pages, "pages", "", "pages directory, relative to root")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page readers (0 = auto)")
	fs.BoolVar(&f.noMinify, "no-minify", false, "keep CSS, JS and SVG unminified")
	fs.StringVar(&f.dateFormat, "date-format", "", "date format for listings (preset or tokens)")
}

// newFlagSet creates a FlagSet that reports to w and prints usage on -h.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs parses args and checks the positional count is within [minArgs, maxArgs].
func parseArgs(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	rest := fs.Args()
	if len(rest) < minArgs || len(rest) > maxArgs {
		return nil, fmt.Errorf("%w: %s expects %s, got %d", ErrInvalidArgs, fs.Name(), argCount(minArgs, maxArgs), len(rest))
	}
	return rest, nil
}

func argCount(minArgs, maxArgs int) string {
	if minArgs == maxArgs {
		return fmt.Sprintf("%d argument(s)", minArgs)
	}
	return fmt.Sprintf("%d to %d argument(s)", minArgs, maxArgs)
}

func parseComponentsFlags(args []string, w io.Writer) (*componentsFlags, []string, error) {
	f := &componentsFlags{}
	fs := newFlagSet("components", w, printComponentsUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.BoolVar(&f.css, "css", false, "print the combined component CSS")
	fs.BoolVar(&f.js, "js", false, "print the combined component JS")

	rest, err := parseArgs(fs, args, 0, 0)
	return f, rest, err
}

func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.StringVarP(&f.props, "props", "p", "", "props as a YAML or JSON mapping")
	fs.StringArrayVarP(&f.set, "set", "s", nil, "set one prop as key=value (repeatable)")

	rest, err := parseArgs(fs, args, 1, 1)
	return f, rest, err
}

func parsePageFlags(args []string, w io.Writer) (*pageFlags, []string, error) {
	f := &pageFlags{}
	fs := newFlagSet("page", w, printPageUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.BoolVar(&f.render, "render", false, "print the processed asset instead of its metadata")
	fs.StringVarP(&f.output, "output", "o", "", "write the output to a file")

	rest, err := parseArgs(fs, args, 1, 1)
	return f, rest, err
}

func parsePagesFlags(args []string, w io.Writer) (*pagesFlags, []string, error) {
	f := &pagesFlags{}
	fs := newFlagSet("pages", w, printPagesUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	rest, err := parseArgs(fs, args, 0, 1)
	return f, rest, err
}
