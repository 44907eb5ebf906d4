package assets

// AssetLoader returns the text of a named stylesheet or HTML template.
// Names carry no extension and no path components.
type AssetLoader interface {
	// LoadStyle returns ErrStyleNotFound or ErrInvalidAssetName on failure.
	LoadStyle(name string) (string, error)
	// LoadTemplate returns ErrTemplateNotFound or ErrInvalidAssetName on failure.
	LoadTemplate(name string) (string, error)
}
