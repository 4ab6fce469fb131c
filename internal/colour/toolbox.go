package colour

// Toolbox is the set of stateless colour primitives the palette engine
// consumes. Implementations must be safe to call concurrently.
type Toolbox interface {
	// Parse reads a CSS colour string.
	Parse(s string) Colour
	// HSL builds a colour from hue degrees, saturation and lightness percent.
	HSL(h, s, l, alpha float64) Colour
	// OKLCH builds a colour from lightness percent, absolute chroma and hue.
	OKLCH(l, c, h, alpha float64) Colour
	// MaxSRGBChroma is the largest in-gamut chroma at lightness l and hue h.
	MaxSRGBChroma(l, h, fallbackMax float64) float64
	// ContrastRatio is the WCAG contrast between two colours.
	ContrastRatio(a, b Colour) float64
	// RelativeLuminance is the WCAG luminance of a colour.
	RelativeLuminance(c Colour) float64
}

// StandardToolbox implements Toolbox with the package-level functions.
type StandardToolbox struct{}

// NewToolbox returns the default sRGB toolbox.
func NewToolbox() *StandardToolbox {
	return &StandardToolbox{}
}

func (*StandardToolbox) Parse(s string) Colour { return Parse(s) }

func (*StandardToolbox) HSL(h, s, l, alpha float64) Colour { return FromHSL(h, s, l, alpha) }

func (*StandardToolbox) OKLCH(l, c, h, alpha float64) Colour { return FromOKLCH(l, c, h, alpha) }

func (*StandardToolbox) MaxSRGBChroma(l, h, fallbackMax float64) float64 {
	return MaxSRGBChroma(l, h, fallbackMax)
}

func (*StandardToolbox) ContrastRatio(a, b Colour) float64 {
	return ContrastRatio(a.Opaque(), b.Opaque())
}

func (*StandardToolbox) RelativeLuminance(c Colour) float64 { return RelativeLuminance(c) }
