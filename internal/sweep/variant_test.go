package sweep

import (
	"testing"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
)

func TestBuildVariant(t *testing.T) {
	tb := colour.NewToolbox()
	base := Base{
		HSL:     params.HSLParams{H: 200, S: 76, L: 36},
		OKLCH:   params.OKLCHParams{L: 53, H: 238, CPercent: 50},
		Opacity: 0.5,
	}

	tests := []struct {
		name  string
		vary  Vary
		value float64
		check func(t *testing.T, c colour.Colour)
	}{
		{
			name: "hue", vary: VaryHue, value: 90,
			check: func(t *testing.T, c colour.Colour) {
				if c.HSL() != (colour.HSL{H: 90, S: 76, L: 36}) {
					t.Errorf("HSL() = %+v", c.HSL())
				}
			},
		},
		{
			name: "saturation", vary: VarySaturation, value: 10,
			check: func(t *testing.T, c colour.Colour) {
				if c.HSL() != (colour.HSL{H: 200, S: 10, L: 36}) {
					t.Errorf("HSL() = %+v", c.HSL())
				}
			},
		},
		{
			name: "opacity", vary: VaryOpacity, value: 25,
			check: func(t *testing.T, c colour.Colour) {
				if c.Alpha() != 0.25 {
					t.Errorf("Alpha() = %v, want 0.25", c.Alpha())
				}
			},
		},
		{
			name: "oklch lightness", vary: VaryOKLCHL, value: 70,
			check: func(t *testing.T, c colour.Colour) {
				o := c.OKLCH()
				maxC := tb.MaxSRGBChroma(53, 238, colour.StaticMaxChroma)
				if o.L != 70 || o.H != 238 || o.C != colour.Round4(maxC/2) {
					t.Errorf("OKLCH() = %+v, want L 70 C %v H 238", o, colour.Round4(maxC/2))
				}
			},
		},
		{
			name: "oklch hue", vary: VaryOKLCHH, value: 10,
			check: func(t *testing.T, c colour.Colour) {
				if o := c.OKLCH(); o.H != 10 || o.L != 53 {
					t.Errorf("OKLCH() = %+v", o)
				}
			},
		},
		{
			name: "oklch chroma", vary: VaryOKLCHC, value: 0.05,
			check: func(t *testing.T, c colour.Colour) {
				if o := c.OKLCH(); o.C != 0.05 || o.H != 238 {
					t.Errorf("OKLCH() = %+v", o)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := BuildVariant(tb, tt.vary, tt.value, base, 0)
			if !c.IsValid() {
				t.Fatalf("BuildVariant() invalid: %v", c.Err())
			}
			if tt.vary != VaryOpacity && c.Alpha() != 0.5 {
				t.Errorf("Alpha() = %v, want base 0.5", c.Alpha())
			}
			tt.check(t, c)
		})
	}
}

func TestBuildVariantAchromaticHue(t *testing.T) {
	tb := colour.NewToolbox()
	base := Base{
		HSL:     params.HSLParams{H: 0, S: 0, L: 50},
		OKLCH:   params.OKLCHParams{L: 60, H: 30, CPercent: 0},
		Opacity: 1,
	}

	// Lightness sweeps of a grey keep the remembered hue and a negligible chroma.
	c := BuildVariant(tb, VaryOKLCHL, 40, base, 150)
	if o := c.OKLCH(); o.H != 150 || o.C != negligibleChroma {
		t.Errorf("oklch_l OKLCH() = %+v, want H 150 C %v", o, negligibleChroma)
	}

	// Hue sweeps keep the swept hue.
	c = BuildVariant(tb, VaryOKLCHH, 300, base, 150)
	if o := c.OKLCH(); o.H != 300 {
		t.Errorf("oklch_h OKLCH() = %+v, want H 300", o)
	}

	// A zero chroma swatch takes the remembered hue.
	c = BuildVariant(tb, VaryOKLCHC, 0, base, 150)
	if o := c.OKLCH(); o.H != 150 || o.C != 0 {
		t.Errorf("oklch_c OKLCH() = %+v, want H 150 C 0", o)
	}
}

func TestBuildVariantInvalid(t *testing.T) {
	tb := colour.NewToolbox()
	c := BuildVariant(tb, VaryLightness, 150, Base{Opacity: 1}, 0)
	if c.IsValid() {
		t.Error("lightness 150 should be rejected by the toolbox")
	}
}
