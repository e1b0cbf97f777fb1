package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/havlicek/easybook"
	"github.com/havlicek/easybook/internal/config"
	"github.com/havlicek/easybook/internal/packager"
)

// Exit codes for the easybook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// usageError wraps a flag parsing error, keeping flag.ErrHelp recognizable.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, packager.ErrSourceMissing) ||
		errors.Is(err, packager.ErrInvalidRoot) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidLabelKind) ||
		errors.Is(err, easybook.ErrEmptyContent) ||
		errors.Is(err, easybook.ErrInvalidAssetPath) ||
		errors.Is(err, easybook.ErrInvalidLabelFormat) ||
		errors.Is(err, easybook.ErrInvalidTemplateSet) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrDuplicatePage) ||
		errors.Is(err, packager.ErrInvalidStaging) {
		return ExitUsage
	}

	return ExitGeneral
}
