package pipeline

import "strings"

// InjectCSS inserts css as a <style> block into an HTML document.
// Tries </head> first, then right after <body>, then prepends.
// Empty css returns the document unchanged.
func InjectCSS(document, css string) string {
	if css == "" {
		return document
	}

	block := "<style>" + sanitizeCSS(css) + "</style>"
	lower := strings.ToLower(document)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return document[:idx] + block + document[idx:]
	}
	if idx := strings.Index(lower, "<body"); idx != -1 {
		if end := strings.IndexByte(document[idx:], '>'); end != -1 {
			pos := idx + end + 1
			return document[:pos] + block + document[pos:]
		}
	}
	return block + document
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
