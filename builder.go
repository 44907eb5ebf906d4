package lessonpdf

import (
	"context"
	"log/slog"
	"time"

	"github.com/JOhn12345re/lessonpdf/internal/logfields"
)

// Layout constants in centimeters.
const (
	DefaultCoverImageWidth   = 14.0
	DefaultCoverImageHeight  = 9.0
	DefaultLessonImageWidth  = 14.0
	DefaultLessonImageHeight = 8.0

	termColumnWidth       = 4.0
	definitionColumnWidth = 10.0
)

// citationSeparator joins a citation label and its quoted text.
const citationSeparator = " — "

// Builder turns a Volume into the ordered block sequence of a Document.
// A Builder holds no per-build state and can build several volumes.
type Builder struct {
	resolver    AssetResolver
	page        PageSettings
	coverWidth  float64
	coverHeight float64
	imageWidth  float64
	imageHeight float64
	workers     int
	logger      *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithPageSettings sets the page geometry attached to built documents.
func WithPageSettings(p PageSettings) BuilderOption {
	return func(b *Builder) {
		b.page = p
	}
}

// WithFetchWorkers sets how many images may be fetched at once.
// 1 (the default) fetches sequentially in the calling goroutine.
// Panics if n < 1.
func WithFetchWorkers(n int) BuilderOption {
	if n < 1 {
		panic("lessonpdf: WithFetchWorkers count must be at least 1")
	}
	return func(b *Builder) {
		b.workers = n
	}
}

// WithCoverImageSize sets the cover illustration size, which is also the
// height of the spacer used when the cover image is unavailable.
// Panics if either dimension is not positive.
func WithCoverImageSize(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("lessonpdf: WithCoverImageSize dimensions must be positive")
	}
	return func(b *Builder) {
		b.coverWidth, b.coverHeight = width, height
	}
}

// WithLessonImageSize sets the size of lesson illustrations.
// Panics if either dimension is not positive.
func WithLessonImageSize(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("lessonpdf: WithLessonImageSize dimensions must be positive")
	}
	return func(b *Builder) {
		b.imageWidth, b.imageHeight = width, height
	}
}

// WithBuilderLogger sets the logger used for build progress.
func WithBuilderLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a Builder that fetches illustrations through resolver.
// Panics if resolver is nil.
func NewBuilder(resolver AssetResolver, opts ...BuilderOption) *Builder {
	if resolver == nil {
		panic("nil AssetResolver in NewBuilder")
	}
	b := &Builder{
		resolver:    resolver,
		page:        DefaultPageSettings(),
		coverWidth:  DefaultCoverImageWidth,
		coverHeight: DefaultCoverImageHeight,
		imageWidth:  DefaultLessonImageWidth,
		imageHeight: DefaultLessonImageHeight,
		workers:     1,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates v and produces its block sequence:
//
//  1. cover: title, subtitle, image (or a spacer of the same height), page break
//  2. provenance notice, page break
//  3. optional introduction: heading, text, page break
//  4. per lesson: heading, image (omitted when unavailable), reference,
//     narrative, citations, vocabulary table (when not empty), reflection,
//     questions, page break
//  5. closing heading and text
//
// The cover keeps its height when its image is missing while a lesson
// simply loses the image block.
//
// Validation happens before any fetch. Fetch failures never fail the build.
func (b *Builder) Build(ctx context.Context, v *Volume) (*Document, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := b.page.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	images := b.resolveImages(ctx, v)

	seq := &sequence{blocks: make([]Block, 0, estimateBlocks(v))}
	b.emitCover(seq, v.Cover, images[0])

	seq.markup(StyleBody, v.notice())
	seq.pageBreak()

	if v.Introduction != nil {
		seq.text(StyleSectionHeading, v.Introduction.Heading)
		seq.markup(StyleBody, v.Introduction.Text)
		seq.pageBreak()
	}

	labels := v.Labels.withDefaults()
	for i := range v.Lessons {
		if v.Lessons[i].ImageURL != "" && !images[i+1].Ok() {
			b.logger.Debug("lesson illustration omitted", logfields.Lesson(i))
		}
		b.emitLesson(seq, &v.Lessons[i], images[i+1], labels)
	}

	seq.text(StyleSectionHeading, v.closingHeading())
	seq.text(StyleBody, v.Closing.Text)

	b.logger.Info("document assembled",
		logfields.Volume(v.Name),
		logfields.Lessons(len(v.Lessons)),
		logfields.Blocks(len(seq.blocks)),
		logfields.Duration(time.Since(start)))

	return &Document{
		Title:  v.Cover.Title,
		Blocks: seq.blocks,
		Page:   b.page,
		Styles: registryFor(v.Colors),
	}, nil
}

// resolveImages fetches the cover image (index 0) and every lesson image
// (index i+1). Missing references stay Absent without a fetch.
func (b *Builder) resolveImages(ctx context.Context, v *Volume) []ImageResult {
	urls := make([]string, 0, len(v.Lessons)+1)
	urls = append(urls, v.Cover.ImageURL)
	for i := range v.Lessons {
		urls = append(urls, v.Lessons[i].ImageURL)
	}
	if b.workers > 1 {
		b.logger.Debug("prefetching images", logfields.Workers(b.workers))
	}
	return prefetch(ctx, b.resolver, urls, b.workers)
}

// emitCover writes the cover sub-sequence.
func (b *Builder) emitCover(seq *sequence, c Cover, img ImageResult) {
	seq.text(StyleTitle, c.Title)
	seq.text(StyleSubtitle, c.Subtitle)
	if img.Ok() {
		seq.image(img, b.coverWidth, b.coverHeight)
	} else {
		seq.add(Spacer{Height: b.coverHeight})
	}
	seq.pageBreak()
}

// emitLesson writes one lesson. Sub-block order is fixed.
func (b *Builder) emitLesson(seq *sequence, l *Lesson, img ImageResult, labels Labels) {
	seq.text(StyleSectionHeading, l.Title)
	if img.Ok() {
		seq.image(img, b.imageWidth, b.imageHeight)
	}
	seq.text(StyleBody, labels.Reference+l.Reference)
	seq.text(StyleBody, l.Narrative)
	for _, c := range l.Citations {
		seq.text(StyleCitation, c.Label+citationSeparator+c.Text)
	}
	if len(l.Vocabulary) > 0 {
		seq.add(vocabularyTable(l.Vocabulary, labels))
	}
	seq.text(StyleBody, labels.Reflection+l.Reflection)
	for _, q := range l.Questions {
		seq.text(StyleBody, labels.Prompt+q)
	}
	seq.pageBreak()
}

// vocabularyTable builds the header row followed by the terms in order.
// Callers must not pass an empty vocabulary.
func vocabularyTable(terms []Term, labels Labels) Table {
	rows := make([][2]string, 0, len(terms)+1)
	rows = append(rows, [2]string{labels.TermHeader, labels.DefinitionHeader})
	for _, t := range terms {
		rows = append(rows, [2]string{t.Word, t.Definition})
	}
	return Table{
		Rows:         rows,
		ColumnWidths: [2]float64{termColumnWidth, definitionColumnWidth},
	}
}

// estimateBlocks sizes the block slice for a volume.
func estimateBlocks(v *Volume) int {
	n := 9 // cover, notice, optional introduction, closing
	for i := range v.Lessons {
		l := &v.Lessons[i]
		n += 8 + len(l.Citations) + len(l.Questions)
	}
	return n
}

// sequence accumulates blocks in emission order.
type sequence struct {
	blocks []Block
}

func (s *sequence) add(b Block) {
	s.blocks = append(s.blocks, b)
}

func (s *sequence) text(style StyleName, text string) {
	s.add(Paragraph{Style: style, Text: text})
}

func (s *sequence) markup(style StyleName, text string) {
	s.add(Paragraph{Style: style, Text: text, Markup: true})
}

func (s *sequence) image(img ImageResult, width, height float64) {
	s.add(Image{
		Data:        img.Bytes(),
		ContentType: img.ContentType(),
		Width:       width,
		Height:      height,
	})
}

func (s *sequence) pageBreak() {
	s.add(PageBreak{})
}
