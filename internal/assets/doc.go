// Package assets provides the stylesheet and HTML template used to lay out
// lesson volumes.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    └── EmbeddedLoader    - loads from go:embed filesystem
//
// The embedded base stylesheet covers block-level layout (images, spacers,
// page breaks, tables). Paragraph styles are generated from the style
// registry of the root package and appended after it.
//
// # Directory Structure
//
//	styles/
//	└── {name}.css           # e.g. base.css
//	templates/
//	└── {name}.html          # e.g. document.html
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
package assets
