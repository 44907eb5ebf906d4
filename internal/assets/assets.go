package assets

// Names of the built-in assets, as passed to AssetLoader.
const (
	BaseStyleName        = "base"     // page layout and block classes
	DocumentTemplateName = "document" // HTML shell around the block markup
)
