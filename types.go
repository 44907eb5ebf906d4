package lessonpdf

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in centimeters.
const (
	MinMargin     = 0.5
	MaxMargin     = 5.0
	DefaultMargin = 2.0
)

// cmPerInch converts centimeters to the inches Chrome expects.
const cmPerInch = 2.54

// paperSizes maps page sizes to width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures the page geometry of a document.
type PageSettings struct {
	Size   string  // "a4", "letter", "legal"
	Margin float64 // centimeters, applied to all four sides
}

// DefaultPageSettings returns an A4 sheet with a 2 cm inset on every side.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Size:   PageSizeA4,
		Margin: DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// paperInches returns the paper width and height in inches.
// Unknown sizes fall back to A4.
func (p PageSettings) paperInches() (width, height float64) {
	dims, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		dims = paperSizes[PageSizeA4]
	}
	return dims[0], dims[1]
}

// marginInches returns the uniform margin in inches.
func (p PageSettings) marginInches() float64 {
	return p.Margin / cmPerInch
}
