package lessonpdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrHTMLRender     = errors.New("HTML rendering failed")

	// Catalog validation errors.
	ErrNilVolume         = errors.New("volume cannot be nil")
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrEmptyCoverTitle   = errors.New("cover title cannot be empty")
	ErrEmptyIntroduction = errors.New("introduction needs a heading and text")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrInvalidColor      = errors.New("invalid color")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Output errors.
	ErrWriteArtifact    = errors.New("failed to write output file")
	ErrDocumentConsumed = errors.New("document already rendered")
	ErrNilDocument      = errors.New("document cannot be nil")
)
