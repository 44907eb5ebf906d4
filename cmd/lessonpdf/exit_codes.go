package main

import (
	"errors"
	"os"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/catalog"
	"github.com/JOhn12345re/lessonpdf/internal/config"
)

// Exit codes for the lessonpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Volume written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config or catalog
	ExitIO      = 3 // Output or input file errors
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, lessonpdf.ErrBrowserConnect) ||
		errors.Is(err, lessonpdf.ErrPageCreate) ||
		errors.Is(err, lessonpdf.ErrPageLoad) ||
		errors.Is(err, lessonpdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, lessonpdf.ErrWriteArtifact) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrOutputDir) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoVolume) ||
		errors.Is(err, ErrConflictingInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, catalog.ErrVolumeNotFound) ||
		errors.Is(err, lessonpdf.ErrInvalidCatalog) ||
		errors.Is(err, lessonpdf.ErrInvalidPageSize) ||
		errors.Is(err, lessonpdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
