package lessonpdf

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultNotice is the provenance notice printed after the cover when a
// volume does not carry its own. It is inline markdown.
const DefaultNotice = `**Sources and rights:**
Biblical text: Louis Segond 1910, public domain.
Illustrations: Pixabay, free for educational and non-commercial use.
This document was created for teaching purposes.`

// DefaultClosingHeading is the heading of the closing section.
const DefaultClosingHeading = "Conclusion"

// Citation is a scripture quotation attached to a lesson.
type Citation struct {
	Label string // e.g. "Exode 3 :2"
	Text  string
}

// Term is one row of a lesson's vocabulary table.
type Term struct {
	Word       string
	Definition string
}

// Lesson is one illustrated teaching unit.
// Lessons are read-only once built; the Builder never modifies them.
type Lesson struct {
	Title      string // may start with a decorative glyph
	Reference  string
	Narrative  string
	Citations  []Citation
	Vocabulary []Term
	Reflection string
	Questions  []string
	ImageURL   string // optional
}

// Validate checks the required text fields of a lesson.
func (l *Lesson) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&l.Narrative, validation.Required, validation.By(notBlank)),
	)
}

// notBlank rejects strings made only of whitespace, which Required accepts.
func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// Cover describes the first page of a volume.
type Cover struct {
	Title    string
	Subtitle string
	ImageURL string // optional
}

// Section is a heading followed by one paragraph of text.
type Section struct {
	Heading string
	Text    string
}

// Labels are the fixed strings the builder places around lesson content.
// Empty fields take the values of DefaultLabels, so a label cannot be
// removed; set it to a single space to print no visible prefix.
type Labels struct {
	Reference        string // prefix of the reference paragraph
	Reflection       string // prefix of the reflection paragraph
	Prompt           string // prefix of each discussion question
	TermHeader       string // first header cell of the vocabulary table
	DefinitionHeader string // second header cell of the vocabulary table
}

// DefaultLabels returns the labels used when a volume sets none.
func DefaultLabels() Labels {
	return Labels{
		Reference:        "reference: ",
		Reflection:       "reflection: ",
		Prompt:           "prompt: ",
		TermHeader:       "Term",
		DefinitionHeader: "Definition",
	}
}

// withDefaults fills empty fields from DefaultLabels. An empty string
// always means "use the default".
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.Reference == "" {
		l.Reference = d.Reference
	}
	if l.Reflection == "" {
		l.Reflection = d.Reflection
	}
	if l.Prompt == "" {
		l.Prompt = d.Prompt
	}
	if l.TermHeader == "" {
		l.TermHeader = d.TermHeader
	}
	if l.DefinitionHeader == "" {
		l.DefinitionHeader = d.DefinitionHeader
	}
	return l
}

// Volume is the complete input of one document build.
type Volume struct {
	Name         string // used for the document title and default file name
	Cover        Cover
	Notice       string   // inline markdown; empty = DefaultNotice
	Introduction *Section // optional
	Lessons      []Lesson // catalog order is presentation order
	Closing      Section  // empty heading = DefaultClosingHeading
	Labels       Labels
	Colors       map[StyleName]string // optional style color overrides
}

// CatalogError reports the first invalid lesson of a volume.
type CatalogError struct {
	Index int    // zero-based position in Volume.Lessons
	Title string // lesson title, possibly empty
	Err   error
}

func (e *CatalogError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("%v: lesson %d: %v", ErrInvalidCatalog, e.Index, e.Err)
	}
	return fmt.Sprintf("%v: lesson %d (%q): %v", ErrInvalidCatalog, e.Index, e.Title, e.Err)
}

// Unwrap exposes both ErrInvalidCatalog and the underlying cause.
func (e *CatalogError) Unwrap() []error {
	return []error{ErrInvalidCatalog, e.Err}
}

// Validate checks the whole volume and stops at the first failure.
// Called by Builder.Build before any image is fetched.
func (v *Volume) Validate() error {
	if strings.TrimSpace(v.Cover.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrEmptyCoverTitle)
	}
	if in := v.Introduction; in != nil && (strings.TrimSpace(in.Heading) == "" || strings.TrimSpace(in.Text) == "") {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrEmptyIntroduction)
	}
	if err := validateColors(v.Colors); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for i := range v.Lessons {
		if err := v.Lessons[i].Validate(); err != nil {
			return &CatalogError{Index: i, Title: v.Lessons[i].Title, Err: err}
		}
	}
	return nil
}

// notice returns the provenance notice to print.
func (v *Volume) notice() string {
	if strings.TrimSpace(v.Notice) == "" {
		return DefaultNotice
	}
	return v.Notice
}

// closingHeading returns the heading of the closing section.
func (v *Volume) closingHeading() string {
	if v.Closing.Heading == "" {
		return DefaultClosingHeading
	}
	return v.Closing.Heading
}
