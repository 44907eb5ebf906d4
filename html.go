package lessonpdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/JOhn12345re/lessonpdf/internal/assets"
	"github.com/JOhn12345re/lessonpdf/internal/pipeline"
)

// DefaultLang is the language declared on the generated HTML document.
const DefaultLang = "fr"

// composer lays a Document out as a standalone HTML page.
// Output depends only on the document and the composer settings.
type composer struct {
	tmpl    *template.Template
	baseCSS string
	userCSS string
	lang    string
	markup  pipeline.MarkupConverter
}

// documentData feeds the document template.
type documentData struct {
	Lang  string
	Title string
	Body  template.HTML
}

// newComposer loads the document template and base stylesheet from loader.
func newComposer(loader assets.AssetLoader, markup pipeline.MarkupConverter) (*composer, error) {
	src, err := loader.LoadTemplate(assets.DocumentTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	tmpl, err := template.New(assets.DocumentTemplateName).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	css, err := loader.LoadStyle(assets.BaseStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading base style: %w", err)
	}
	return &composer{
		tmpl:    tmpl,
		baseCSS: css,
		lang:    DefaultLang,
		markup:  markup,
	}, nil
}

// compose renders doc to HTML.
func (c *composer) compose(ctx context.Context, doc *Document) (string, error) {
	var body strings.Builder
	for i, b := range doc.Blocks {
		if err := c.writeBlock(ctx, &body, b); err != nil {
			return "", fmt.Errorf("%w: block %d (%s): %v", ErrHTMLRender, i, b.Kind(), err)
		}
	}

	var buf bytes.Buffer
	err := c.tmpl.Execute(&buf, documentData{
		Lang:  c.lang,
		Title: doc.Title,
		Body:  template.HTML(body.String()), // #nosec G203 -- every block escapes its own text
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	return pipeline.InjectCSS(buf.String(), c.stylesheet(doc)), nil
}

// stylesheet concatenates base layout, paragraph styles and user CSS.
// User CSS comes last so it can override the rest.
func (c *composer) stylesheet(doc *Document) string {
	styles := doc.Styles
	if styles == nil {
		styles = NewStyleRegistry()
	}
	css := c.baseCSS + "\n" + styles.CSS()
	if c.userCSS != "" {
		css += "\n" + c.userCSS
	}
	return css
}

func (c *composer) writeBlock(ctx context.Context, w *strings.Builder, b Block) error {
	switch b := b.(type) {
	case Paragraph:
		return c.writeParagraph(ctx, w, b)
	case Image:
		if len(b.Data) == 0 {
			return fmt.Errorf("empty image payload")
		}
		fmt.Fprintf(w, `<img class="block-image" alt="" style="width:%s;height:%s" src="data:%s;base64,%s" />`,
			cm(b.Width), cm(b.Height), html.EscapeString(b.ContentType), base64.StdEncoding.EncodeToString(b.Data))
	case Spacer:
		fmt.Fprintf(w, `<div class="block-spacer" style="height:%s"></div>`, cm(b.Height))
	case Table:
		writeTable(w, b)
	case PageBreak:
		w.WriteString(`<div class="block-page-break"></div>`)
	default:
		return fmt.Errorf("unsupported block %T", b)
	}
	w.WriteByte('\n')
	return nil
}

func (c *composer) writeParagraph(ctx context.Context, w *strings.Builder, p Paragraph) error {
	if !p.Style.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, p.Style)
	}
	fmt.Fprintf(w, `<div class="block-paragraph %s">`, p.Style.ClassName())
	if p.Markup {
		out, err := c.markup.ToHTML(ctx, p.Text)
		if err != nil {
			return err
		}
		w.WriteString(strings.TrimSpace(out))
	} else {
		w.WriteString("<p>")
		w.WriteString(html.EscapeString(p.Text))
		w.WriteString("</p>")
	}
	w.WriteString("</div>\n")
	return nil
}

// writeTable renders the first row as the header.
func writeTable(w *strings.Builder, t Table) {
	w.WriteString(`<table class="block-table"><colgroup>`)
	for _, width := range t.ColumnWidths {
		fmt.Fprintf(w, `<col style="width:%s" />`, cm(width))
	}
	w.WriteString(`</colgroup>`)
	for i, row := range t.Rows {
		cell := "td"
		if i == 0 {
			cell = "th"
			w.WriteString("<thead>")
		} else if i == 1 {
			w.WriteString("<tbody>")
		}
		w.WriteString("<tr>")
		for _, text := range row {
			fmt.Fprintf(w, "<%s>%s</%s>", cell, html.EscapeString(text), cell)
		}
		w.WriteString("</tr>")
		if i == 0 {
			w.WriteString("</thead>")
		}
	}
	if len(t.Rows) > 1 {
		w.WriteString("</tbody>")
	}
	w.WriteString("</table>")
}

// cm formats a length in centimeters as a CSS value.
func cm(v float64) string {
	return fmt.Sprintf("%.2fcm", v)
}
