package main

import (
	"errors"
	"os"

	wiki2md "github.com/alnah/go-wiki2md"
	"github.com/alnah/go-wiki2md/internal/config"
)

// Exit codes for the wiki2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages converted
	ExitGeneral = 1 // General/unexpected error, or some pages failed
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadWikitext) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTemplate) ||
		errors.Is(err, config.ErrInvalidBucket) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, wiki2md.ErrInvalidTemplateName) ||
		errors.Is(err, wiki2md.ErrStyleNotFound) ||
		errors.Is(err, wiki2md.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
