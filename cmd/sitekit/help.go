package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  components  List components, or print their combined CSS/JS")
	fmt.Fprintln(w, "  render      Render a component with props")
	fmt.Fprintln(w, "  page        Show or process a single page")
	fmt.Fprintln(w, "  pages       List the pages under a directory")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitekit help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by every site command.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -r, --root <dir>          Site root directory (default: .)")
	fmt.Fprintln(w, "      --components <dir>    Components directory (default: _components)")
	fmt.Fprintln(w, "      --pages <dir>         Pages directory (default: assets)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel page readers (0 = auto)")
	fmt.Fprintln(w, "      --no-minify           Keep CSS, JS and SVG unminified")
	fmt.Fprintln(w, "      --date-format <s>     Date format for listings")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, datetime")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every loaded file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEKIT_CONFIG, SITEKIT_ROOT, SITEKIT_COMPONENTS, SITEKIT_PAGES,")
	fmt.Fprintln(w, "  SITEKIT_WORKERS, SITEKIT_MINIFY, SITEKIT_DATE_FORMAT")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printComponentsUsage prints usage for the components command.
func printComponentsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit components [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List every component as a dotted name. Names are case-insensitive.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --css                 Print the combined component CSS")
	fmt.Fprintln(w, "      --js                  Print the combined component JS")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit render <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a component. Site data from the config is inherited unless")
	fmt.Fprintln(w, "the component sets inheritData: false.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  name    Component name, e.g. ui.button or ui/button")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Props:")
	fmt.Fprintln(w, "  -p, --props <yaml>        Props as a YAML or JSON mapping")
	fmt.Fprintln(w, "  -s, --set <key=value>     Set one prop; dotted keys nest (repeatable)")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printPageUsage prints usage for the page command.
func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit page <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load a file as a page and print its metadata as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    File path relative to the site root")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --render              Print the processed asset instead")
	fmt.Fprintln(w, "  -o, --output <file>       Write to a file instead of stdout")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printPagesUsage prints usage for the pages command.
func printPagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit pages [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the pages under dir (default: the configured pages directory).")
	fmt.Fprintln(w, "Hidden entries (. or _ prefix) and symbolic links are skipped.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "components":
		printComponentsUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "page":
		printPageUsage(env.Stdout)
	case "pages":
		printPagesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitekit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitekit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
