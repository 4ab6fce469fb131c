package sweep

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

// GeneratedColour is one swatch of a palette.
type GeneratedColour struct {
	HSL     colour.HSL   `json:"hsl"`
	OKLCH   colour.OKLCH `json:"oklch"`
	Opacity float64      `json:"opacity"`
}

// newGeneratedColour captures c as a swatch. An OKLCH colour that was mapped
// into sRGB records the mapped chroma, so the swatch describes what is shown.
func newGeneratedColour(c colour.Colour) GeneratedColour {
	lch := c.OKLCH()
	if lch.C > 0 && !colour.InGamut(lch.L, lch.C, lch.H) {
		lch.C = colour.Round4(colour.MaxSRGBChroma(lch.L, lch.H, lch.C))
	}
	return GeneratedColour{HSL: c.HSL(), OKLCH: lch, Opacity: c.Alpha()}
}

// Colour rebuilds the swatch from its HSL coordinates and opacity.
func (g GeneratedColour) Colour() colour.Colour {
	return colour.FromHSL(
		g.HSL.H,
		math.Max(0, math.Min(100, g.HSL.S)),
		math.Max(0, math.Min(100, g.HSL.L)),
		math.Max(0, math.Min(1, g.Opacity)),
	)
}

// Palette is the ordered result of one sweep. A new generation replaces it.
type Palette struct {
	Vary    Vary
	Count   int
	Base    colour.Colour
	Colours []GeneratedColour
}

// NewPalette creates a palette for a sweep of count swatches over base.
func NewPalette(v Vary, count int, base colour.Colour, colours []GeneratedColour) *Palette {
	return &Palette{
		Vary:    v,
		Count:   count,
		Base:    base,
		Colours: colours,
	}
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Colours)
}

// Get returns the swatch at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (GeneratedColour, error) {
	if index < 0 || index >= p.Len() {
		return GeneratedColour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, p.Len())
	}
	return p.Colours[index], nil
}

// All returns an iterator over all swatches in sweep order.
func (p *Palette) All() func(func(int, GeneratedColour) bool) {
	return func(yield func(int, GeneratedColour) bool) {
		if p == nil {
			return
		}
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToHex converts the swatches to hex strings, with alpha where translucent.
func (p *Palette) ToHex() []string {
	out := make([]string, 0, p.Len())
	for _, g := range p.All() {
		out = append(out, g.Colour().Format(colour.FormatHex))
	}
	return out
}

// ColourJSON represents a swatch in JSON output format.
type ColourJSON struct {
	Hex     string       `json:"hex"`
	RGB     colour.RGB   `json:"rgb"`
	HSL     colour.HSL   `json:"hsl"`
	OKLCH   colour.OKLCH `json:"oklch"`
	Opacity float64      `json:"opacity"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Base    string       `json:"base"`
	Vary    Vary         `json:"vary"`
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, 0, p.Len())
	for _, g := range p.All() {
		c := g.Colour()
		colours = append(colours, ColourJSON{
			Hex:     c.Format(colour.FormatHex),
			RGB:     c.RGB(),
			HSL:     roundHSL(g.HSL),
			OKLCH:   roundOKLCH(g.OKLCH),
			Opacity: g.Opacity,
		})
	}

	out := PaletteJSON{
		Vary:    p.Vary,
		Count:   p.Len(),
		Colours: colours,
	}
	if p.Base.IsValid() {
		out.Base = p.Base.Format(colour.FormatHex)
	}
	return json.MarshalIndent(out, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if p.Len() == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette varying %s with %d colours:\n", p.Vary.DisplayName(), p.Len())
	for i, g := range p.All() {
		c := g.Colour()
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Format(colour.FormatHex), c.Format(colour.FormatHSL))
	}
	return result
}

func roundHSL(h colour.HSL) colour.HSL {
	return colour.HSL{H: math.Round(h.H*100) / 100, S: math.Round(h.S*100) / 100, L: math.Round(h.L*100) / 100}
}

func roundOKLCH(o colour.OKLCH) colour.OKLCH {
	return colour.OKLCH{L: math.Round(o.L*100) / 100, C: colour.Round4(o.C), H: math.Round(o.H*100) / 100}
}
