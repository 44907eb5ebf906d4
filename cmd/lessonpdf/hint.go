package main

import (
	"context"
	"errors"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/catalog"
	"github.com/JOhn12345re/lessonpdf/internal/hints"
)

// hintFor returns the hint printed after err, if any.
// Config lookup hints are attached where the search paths are known.
func hintFor(err error) string {
	switch {
	case errors.Is(err, lessonpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, lessonpdf.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, catalog.ErrVolumeNotFound), errors.Is(err, ErrNoVolume):
		return hints.ForVolumeNotFound(catalog.Names())
	case errors.Is(err, lessonpdf.ErrInvalidCatalog):
		return hints.ForCatalog()
	case errors.Is(err, lessonpdf.ErrWriteArtifact), errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
