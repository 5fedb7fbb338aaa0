package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	logf := func(string, ...any) {}
	if hasVerboseFlag(os.Args[1:]) {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	undo()
	os.Exit(code)
}

// hasVerboseFlag reports whether -v or --verbose appears before any "--".
func hasVerboseFlag(args []string) bool {
	if i := slices.Index(args, "--"); i >= 0 {
		args = args[:i]
	}
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
