package main

import (
	"context"
	"fmt"
)

// commands maps command names to their entry points.
var commands = map[string]func(context.Context, []string, *Environment) error{
	"components": runComponents,
	"render":     runRender,
	"page":       runPage,
	"pages":      runPages,
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	switch name {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitekit %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := cmd(ctx, rest, env)
	code := exitCodeFor(err)
	if code != ExitSuccess {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return code
}
