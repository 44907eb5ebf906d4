// Package pipeline turns block content into HTML fragments.
//
// Two stages live here:
//   - inline markdown to HTML via Goldmark, for notice and introduction text
//   - CSS injection into the assembled HTML document
//
// PDF generation is handled by the root lessonpdf package using headless
// Chrome (go-rod). This package only deals with markup.
package pipeline
