package params

import (
	"math"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

// HueMemory records the last hue each model displayed while it was
// chromatic. When saturation or chroma drops to zero the hue of the colour
// itself becomes meaningless; the remembered hue keeps the hue field from
// jumping to 0.
//
// A slot starts uninitialised and is seeded by the first hue offered to it,
// chromatic or not.
type HueMemory struct {
	hsl   float64
	oklch float64
}

// NewHueMemory returns a memory with both slots uninitialised.
func NewHueMemory() HueMemory {
	return HueMemory{hsl: math.NaN(), oklch: math.NaN()}
}

// SeedHueMemory initialises both slots from c: the HSL slot from its HSL
// hue and the OKLCH slot from its OKLCH hue when chromatic, otherwise from
// the HSL hue. An invalid colour seeds both slots with 0.
func SeedHueMemory(c colour.Colour) HueMemory {
	m := NewHueMemory()
	if !c.IsValid() {
		m.Set(ModelHSL, 0)
		m.Set(ModelOKLCH, 0)
		return m
	}
	hsl := c.HSL()
	ok := c.OKLCH()
	m.Set(ModelHSL, hsl.H)
	if ok.C >= AchromaticChroma {
		m.Set(ModelOKLCH, ok.H)
	} else {
		m.Set(ModelOKLCH, hsl.H)
	}
	return m
}

// Record stores hue for model when chromatic is true. An achromatic hue is
// only stored into an uninitialised slot.
func (m *HueMemory) Record(model Model, hue float64, chromatic bool) {
	if chromatic || !m.Initialised(model) {
		m.Set(model, hue)
	}
}

// Set stores the normalised hue for model unconditionally.
func (m *HueMemory) Set(model Model, hue float64) {
	switch model {
	case ModelHSL:
		m.hsl = colour.NormalizeHue(hue)
	case ModelOKLCH:
		m.oklch = colour.NormalizeHue(hue)
	}
}

// Initialised reports whether the slot for model holds a hue.
func (m HueMemory) Initialised(model Model) bool {
	switch model {
	case ModelHSL:
		return !math.IsNaN(m.hsl)
	case ModelOKLCH:
		return !math.IsNaN(m.oklch)
	}
	return false
}

// Hue returns the remembered hue for model, 0 when uninitialised.
func (m HueMemory) Hue(model Model) float64 {
	var h float64
	switch model {
	case ModelHSL:
		h = m.hsl
	case ModelOKLCH:
		h = m.oklch
	}
	if math.IsNaN(h) {
		return 0
	}
	return h
}

// HSL returns the remembered HSL hue.
func (m HueMemory) HSL() float64 { return m.Hue(ModelHSL) }

// OKLCH returns the remembered OKLCH hue.
func (m HueMemory) OKLCH() float64 { return m.Hue(ModelOKLCH) }
