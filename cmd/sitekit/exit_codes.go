package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/config"
)

// Exit codes for the sitekit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // A component or page failed to parse or render
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, sitekit.ErrInvalidComponentFile) ||
		errors.Is(err, sitekit.ErrFrontmatter) ||
		errors.Is(err, sitekit.ErrDataFile) ||
		errors.Is(err, sitekit.ErrUnsupportedContent) ||
		errors.Is(err, sitekit.ErrRenderOutput) ||
		errors.Is(err, sitekit.ErrTemplateParse) ||
		errors.Is(err, sitekit.ErrTemplateExecute) ||
		errors.Is(err, sitekit.ErrMinify) ||
		errors.Is(err, sitekit.ErrScriptTransform) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, sitekit.ErrComponentNotFound) ||
		errors.Is(err, sitekit.ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrUnsupportedFile) ||
		errors.Is(err, ErrInvalidProps) {
		return ExitUsage
	}

	return ExitGeneral
}
