// Package lessonpdf assembles illustrated lesson volumes and prints them to
// PDF using headless Chrome.
//
// # Quick Start
//
// Build a document from a volume, render it, and close the renderer:
//
//	builder := lessonpdf.NewBuilder(lessonpdf.NewHTTPResolver())
//	doc, err := builder.Build(ctx, volume)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := lessonpdf.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	if err := r.Render(ctx, doc, "volume.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Assembly Pipeline
//
//  1. Volume.Validate rejects a catalog with a missing cover title or a
//     lesson without title or narrative, naming the lesson index.
//  2. The AssetResolver fetches the cover and lesson illustrations.
//     Any failure yields Absent and the build goes on.
//  3. The Builder emits the ordered block sequence: cover, notice,
//     optional introduction, one page per lesson, closing.
//  4. The Renderer lays the blocks out as HTML, prints it through Chrome
//     and writes the file atomically.
//
// Block order is the only layout signal. A PageBreak ends the cover, the
// notice, the introduction and each lesson.
//
// # Illustrations
//
// A missing cover image is replaced by a Spacer of the same height so the
// cover keeps its layout. A missing lesson image is omitted.
//
// Use WithFetchWorkers to fetch illustrations concurrently. Results keep
// their catalog positions whatever the completion order.
//
// # Error Handling
//
// Invalid catalogs return a *CatalogError matching ErrInvalidCatalog.
// Output errors wrap ErrWriteArtifact. Browser errors wrap
// ErrBrowserConnect, ErrPageCreate, ErrPageLoad or ErrPDFGeneration.
package lessonpdf
