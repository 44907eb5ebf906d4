package lessonpdf

// BlockKind identifies the concrete type of a Block.
type BlockKind int

// Block kinds.
const (
	KindImage BlockKind = iota + 1
	KindParagraph
	KindTable
	KindPageBreak
	KindSpacer
)

func (k BlockKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "page-break"
	case KindSpacer:
		return "spacer"
	}
	return "unknown"
}

// Block is one renderable unit. The order of blocks in a Document is the
// only layout signal the renderer receives.
//
// The set of implementations is closed: Image, Paragraph, Table, PageBreak
// and Spacer.
type Block interface {
	Kind() BlockKind
	isBlock()
}

// Compile-time interface implementation checks.
var (
	_ Block = Image{}
	_ Block = Paragraph{}
	_ Block = Table{}
	_ Block = PageBreak{}
	_ Block = Spacer{}
)

// Image is a resolved illustration, used both on the cover and in lessons.
// Width and Height are in centimeters.
type Image struct {
	Data        []byte
	ContentType string
	Width       float64
	Height      float64
}

func (Image) Kind() BlockKind { return KindImage }
func (Image) isBlock()        {}

// Paragraph is a run of text in one of the registry styles.
// When Markup is set, Text is inline markdown; otherwise it is plain text.
type Paragraph struct {
	Style  StyleName
	Text   string
	Markup bool
}

func (Paragraph) Kind() BlockKind { return KindParagraph }
func (Paragraph) isBlock()        {}

// Table is a two-column bordered table. Rows[0] is the header row.
// ColumnWidths are in centimeters.
type Table struct {
	Rows         [][2]string
	ColumnWidths [2]float64
}

func (Table) Kind() BlockKind { return KindTable }
func (Table) isBlock()        {}

// PageBreak forces the next block onto a new page.
type PageBreak struct{}

func (PageBreak) Kind() BlockKind { return KindPageBreak }
func (PageBreak) isBlock()        {}

// Spacer is vertical blank space. Height is in centimeters.
type Spacer struct {
	Height float64
}

func (Spacer) Kind() BlockKind { return KindSpacer }
func (Spacer) isBlock()        {}

// Document is a finished block sequence with its page geometry.
// It is built once by a Builder and rendered once by a Renderer.
type Document struct {
	Title    string
	Blocks   []Block
	Page     PageSettings
	Styles   *StyleRegistry
	rendered bool
}

// Count returns the number of blocks of the given kind.
func (d *Document) Count(kind BlockKind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind() == kind {
			n++
		}
	}
	return n
}
