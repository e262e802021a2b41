package main

import (
	"errors"
	"os"

	"github.com/alnah/go-term2html/internal/config"
)

// Exit codes for the term2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful compilation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source not found, read/write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoSource) ||
		errors.Is(err, ErrNoDestination) ||
		errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidSpacingModel) ||
		errors.Is(err, config.ErrInvalidCellWidth) ||
		errors.Is(err, config.ErrInvalidTightening) ||
		errors.Is(err, ErrConflictingSpacing) ||
		errors.Is(err, ErrInvalidSpacing) {
		return ExitUsage
	}

	return ExitGeneral
}
