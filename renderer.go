package lessonpdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/JOhn12345re/lessonpdf/internal/assets"
	"github.com/JOhn12345re/lessonpdf/internal/fileutil"
	"github.com/JOhn12345re/lessonpdf/internal/logfields"
	"github.com/JOhn12345re/lessonpdf/internal/pipeline"
)

// DefaultRenderTimeout bounds page load and PDF generation in Chrome.
const DefaultRenderTimeout = 60 * time.Second

// artifactPerm is the mode of written PDF files.
const artifactPerm = 0o644

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ pdfRenderer = (*rodRenderer)(nil)
	_ io.Closer   = (*Renderer)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page PageSettings
}

// Renderer lays out Documents and writes them as PDF files.
// Create with NewRenderer and call Close when done to release the browser.
type Renderer struct {
	composer *composer
	pdf      pdfRenderer
	timeout  time.Duration
	logger   *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRenderTimeout bounds the Chrome side of a render.
// Panics if d <= 0.
func WithRenderTimeout(d time.Duration) RendererOption {
	if d <= 0 {
		panic("lessonpdf: WithRenderTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithUserCSS appends css after the built-in styles.
func WithUserCSS(css string) RendererOption {
	return func(r *Renderer) {
		r.composer.userCSS = css
	}
}

// WithLang sets the lang attribute of the generated HTML.
func WithLang(lang string) RendererOption {
	return func(r *Renderer) {
		if lang != "" {
			r.composer.lang = lang
		}
	}
}

// WithRendererLogger sets the logger used for render progress.
func WithRendererLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// withPDFRenderer replaces the Chrome backend (tests).
func withPDFRenderer(p pdfRenderer) RendererOption {
	return func(r *Renderer) {
		r.pdf = p
	}
}

// NewRenderer creates a Renderer backed by headless Chrome.
// The browser is started on the first Render call.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	c, err := newComposer(assets.NewEmbeddedLoader(), pipeline.NewGoldmarkConverter())
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		composer: c,
		timeout:  DefaultRenderTimeout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.pdf == nil {
		r.pdf = newRodRenderer(r.timeout)
	}
	return r, nil
}

// RenderHTML returns the HTML document Chrome would print.
// It does not consume doc.
func (r *Renderer) RenderHTML(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	out, err := r.composer.compose(ctx, doc)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Render lays doc out and writes the PDF to outputPath.
// A document is consumed by its first Render call, successful or not;
// later calls return ErrDocumentConsumed.
// The file at outputPath is replaced atomically: on failure it is left as
// it was, and no partial PDF is ever visible there.
func (r *Renderer) Render(ctx context.Context, doc *Document, outputPath string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if doc == nil {
		return ErrNilDocument
	}
	if doc.rendered {
		return ErrDocumentConsumed
	}
	doc.rendered = true

	if err := doc.Page.Validate(); err != nil {
		return err
	}

	start := time.Now()
	htmlContent, err := r.composer.compose(ctx, doc)
	if err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pdf, err := r.pdf.RenderFromFile(ctx, tmpPath, &pdfOptions{Page: doc.Page})
	if err != nil {
		return fmt.Errorf("converting to PDF: %w", err)
	}

	if err := fileutil.WriteFileAtomic(outputPath, pdf, artifactPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}

	r.logger.Info("document rendered",
		logfields.Path(outputPath),
		logfields.Bytes(len(pdf)),
		logfields.Blocks(len(doc.Blocks)),
		logfields.Duration(time.Since(start)))
	return nil
}

// Close releases the browser.
func (r *Renderer) Close() error {
	if r.pdf != nil {
		return r.pdf.Close()
	}
	return nil
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") != "" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// buildPDFOptions maps page settings to Chrome print options.
// nil opts means default page settings.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	if opts != nil {
		page = opts.Page
	}
	width, height := page.paperInches()
	margin := page.marginInches()

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
