package lessonpdf

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// StyleName identifies one of the fixed paragraph styles.
type StyleName string

// The closed set of styles every block refers to.
const (
	StyleTitle          StyleName = "title"
	StyleSubtitle       StyleName = "subtitle"
	StyleBody           StyleName = "body"
	StyleCitation       StyleName = "citation"
	StyleSectionHeading StyleName = "section-heading"
)

// styleOrder fixes the iteration order of the registry.
var styleOrder = []StyleName{
	StyleTitle,
	StyleSubtitle,
	StyleBody,
	StyleCitation,
	StyleSectionHeading,
}

// StyleNames returns all style names in registry order.
func StyleNames() []StyleName {
	return append([]StyleName(nil), styleOrder...)
}

// Valid reports whether s belongs to the fixed style set.
func (s StyleName) Valid() bool {
	for _, n := range styleOrder {
		if n == s {
			return true
		}
	}
	return false
}

// ClassName returns the CSS class carried by paragraphs in this style.
func (s StyleName) ClassName() string {
	return "style-" + string(s)
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment string

// Alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Style holds the visual attributes of a paragraph style.
// Sizes and spacing are in points.
type Style struct {
	FontSize    float64
	Leading     float64
	Color       string
	Align       Alignment
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// defaultStyles are the attribute values of the printed volumes.
var defaultStyles = map[StyleName]Style{
	StyleTitle:          {FontSize: 18, Leading: 22, Color: "darkblue", Align: AlignCenter, SpaceAfter: 12},
	StyleSubtitle:       {FontSize: 13, Leading: 16, Color: "grey", Align: AlignCenter, SpaceAfter: 10},
	StyleBody:           {FontSize: 11, Leading: 15, Color: "black", Align: AlignLeft, SpaceAfter: 8},
	StyleCitation:       {FontSize: 10, Leading: 13, Color: "darkgreen", Align: AlignLeft, LeftIndent: 15},
	StyleSectionHeading: {FontSize: 14, Leading: 17, Color: "darkred", Align: AlignLeft, SpaceBefore: 10, SpaceAfter: 6},
}

// colorPattern accepts CSS color names and #rgb / #rrggbb hex values.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]{3,30})$`)

// isValidColor checks that a color is safe to emit into a stylesheet.
func isValidColor(c string) bool {
	return colorPattern.MatchString(c)
}

// StyleRegistry maps style names to frozen attributes.
// It has no mutators; options only apply during construction.
type StyleRegistry struct {
	styles map[StyleName]Style
}

// StyleOption adjusts a registry while it is being built.
type StyleOption func(map[StyleName]Style)

// WithColor overrides the text color of one style.
// Unknown style names and unsafe color values are ignored; Volume.Validate
// reports them before a build starts.
func WithColor(name StyleName, color string) StyleOption {
	return func(m map[StyleName]Style) {
		s, ok := m[name]
		if !ok || !isValidColor(color) {
			return
		}
		s.Color = color
		m[name] = s
	}
}

// NewStyleRegistry returns a registry seeded with the default styles.
func NewStyleRegistry(opts ...StyleOption) *StyleRegistry {
	m := make(map[StyleName]Style, len(defaultStyles))
	for k, v := range defaultStyles {
		m[k] = v
	}
	for _, opt := range opts {
		opt(m)
	}
	return &StyleRegistry{styles: m}
}

// Lookup returns the attributes of a style.
func (r *StyleRegistry) Lookup(name StyleName) (Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// CSS renders one class rule per style, in registry order.
func (r *StyleRegistry) CSS() string {
	var buf strings.Builder
	buf.WriteString("\n/* Paragraph styles */\n")
	for _, name := range styleOrder {
		s := r.styles[name]
		fmt.Fprintf(&buf, `.%s {
  font-size: %.1fpt;
  line-height: %.1fpt;
  color: %s;
  text-align: %s;
  margin: %.1fpt 0 %.1fpt %.1fpt;
}
`, name.ClassName(), s.FontSize, s.Leading, s.Color, s.Align, s.SpaceBefore, s.SpaceAfter, s.LeftIndent)
	}
	return buf.String()
}

// registryFor builds the registry of a volume from its color overrides.
func registryFor(colors map[StyleName]string) *StyleRegistry {
	opts := make([]StyleOption, 0, len(colors))
	for _, name := range styleOrder {
		if c, ok := colors[name]; ok {
			opts = append(opts, WithColor(name, c))
		}
	}
	return NewStyleRegistry(opts...)
}

// validateColors checks volume color overrides.
func validateColors(colors map[StyleName]string) error {
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		c := colors[name]
		if !name.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
		}
		if !isValidColor(c) {
			return fmt.Errorf("%w: %q for style %q", ErrInvalidColor, c, name)
		}
	}
	return nil
}
