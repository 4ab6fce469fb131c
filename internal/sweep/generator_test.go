package sweep

import (
	"testing"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
)

func hslRequest(tb colour.Toolbox, c colour.Colour, v Vary, count int) Request {
	hsl := c.HSL()
	mem := params.SeedHueMemory(c)
	in := params.Inputs{Model: params.ModelHSL, HSL: params.HSLInputs{
		Hue:        params.FormatInt(int(hsl.H)),
		Saturation: params.FormatInt(int(hsl.S)),
		Lightness:  params.FormatInt(int(hsl.L)),
	}}
	return Request{
		Vary:      v,
		Count:     count,
		Derived:   params.Derive(tb, in, c, mem),
		Memory:    mem,
		Canonical: c,
	}
}

func TestGenerateLightnessSweep(t *testing.T) {
	tb := colour.NewToolbox()
	base := tb.HSL(200, 76, 36, 1)

	p := NewGenerator(tb, nil).Generate(hslRequest(tb, base, VaryLightness, 5))

	want := []float64{36, 52, 68, 84, 100}
	if p.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(want))
	}
	for i, g := range p.All() {
		if g.HSL.L != want[i] {
			t.Errorf("swatch %d lightness = %v, want %v", i, g.HSL.L, want[i])
		}
		if g.HSL.H != 200 || g.HSL.S != 76 {
			t.Errorf("swatch %d = %+v, want hue 200 and saturation 76", i, g.HSL)
		}
		if g.Opacity != 1 {
			t.Errorf("swatch %d opacity = %v, want 1", i, g.Opacity)
		}
	}
}

func TestGenerateHueWrap(t *testing.T) {
	tb := colour.NewToolbox()
	g := NewGenerator(tb, nil)
	spec := Spec{Vary: VaryHue, Count: 3, Base: 350, Max: 10}
	base := Base{HSL: params.HSLParams{H: 350, S: 80, L: 50}, Opacity: 1}

	want := []float64{350, 0, 10}
	for i, v := range spec.Values() {
		c := BuildVariant(g.toolbox, spec.Vary, v, base, 0)
		if !c.IsValid() {
			t.Fatalf("swatch %d invalid: %v", i, c.Err())
		}
		if got := c.HSL().H; got != want[i] {
			t.Errorf("swatch %d hue = %v, want %v", i, got, want[i])
		}
	}
}

func TestGenerateAchromaticChromaSweep(t *testing.T) {
	tb := colour.NewToolbox()
	canonical := tb.Parse("oklch(50% 0 0)")
	if !canonical.IsValid() {
		t.Fatalf("Parse() invalid: %v", canonical.Err())
	}

	mem := params.SeedHueMemory(canonical)
	mem.Set(params.ModelOKLCH, 120)
	in := params.Inputs{Model: params.ModelOKLCH, OKLCH: params.OKLCHInputs{Lightness: "50", Chroma: "0", Hue: "0"}}
	req := Request{
		Vary:      VaryOKLCHC,
		Count:     3,
		Derived:   params.Derive(tb, in, canonical, mem),
		Memory:    mem,
		Canonical: canonical,
	}

	p := NewGenerator(tb, nil).Generate(req)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	maxC := colour.Round4(tb.MaxSRGBChroma(50, 120, colour.StaticMaxChroma))
	wantC := []float64{0, colour.Round4(maxC / 2), maxC}
	for i, g := range p.All() {
		if g.OKLCH.H != 120 {
			t.Errorf("swatch %d hue = %v, want 120 from memory", i, g.OKLCH.H)
		}
		if g.OKLCH.L != 50 {
			t.Errorf("swatch %d lightness = %v, want 50", i, g.OKLCH.L)
		}
		if diff := g.OKLCH.C - wantC[i]; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("swatch %d chroma = %v, want %v", i, g.OKLCH.C, wantC[i])
		}
	}
}

func TestGenerateSingleSwatch(t *testing.T) {
	tb := colour.NewToolbox()
	base := tb.HSL(200, 76, 36, 0.8)
	g := NewGenerator(tb, nil)

	for _, v := range Varies {
		t.Run(v.String(), func(t *testing.T) {
			req := hslRequest(tb, base, v, 1)
			spec, _ := g.Plan(req)
			p := g.Generate(req)
			if p.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", p.Len())
			}
			got := p.Colours[0]

			switch v {
			case VaryHue, VarySaturation, VaryLightness, VaryOpacity:
				if got.HSL != (colour.HSL{H: 200, S: 76, L: 36}) {
					t.Errorf("HSL = %+v, want base", got.HSL)
				}
				if got.Opacity != 0.8 {
					t.Errorf("Opacity = %v, want 0.8", got.Opacity)
				}
			default:
				d := req.Derived.OKLCH
				if int(got.OKLCH.L) != d.L || int(got.OKLCH.H) != d.H {
					t.Errorf("OKLCH = %+v, want base %+v", got.OKLCH, d)
				}
				if spec.Values()[0] != spec.Base {
					t.Errorf("value = %v, want base %v", spec.Values()[0], spec.Base)
				}
			}
		})
	}
}

func TestGenerateFallsBackToBase(t *testing.T) {
	tb := colour.NewToolbox()
	base := tb.HSL(10, 50, 50, 1)
	req := hslRequest(tb, base, Vary(99), 3)

	p := NewGenerator(tb, nil).Generate(req)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 fallback swatches", p.Len())
	}
	for i, g := range p.All() {
		if g.HSL != (colour.HSL{H: 10, S: 50, L: 50}) {
			t.Errorf("swatch %d = %+v, want base", i, g.HSL)
		}
	}
}

func TestPlanChromaUsesEffectiveHue(t *testing.T) {
	tb := colour.NewToolbox()
	g := NewGenerator(tb, nil)
	mem := params.NewHueMemory()
	mem.Set(params.ModelOKLCH, 250)

	req := Request{
		Vary:  VaryOKLCHC,
		Count: 4,
		Derived: params.Derived{
			OKLCH:   params.OKLCHParams{L: 0, H: 30},
			Opacity: 1,
		},
		Memory: mem,
	}
	spec, base := g.Plan(req)
	if spec.Max != minChromaMax {
		t.Errorf("Max = %v, want %v at black", spec.Max, minChromaMax)
	}
	if spec.Base != 0 {
		t.Errorf("Base = %v, want 0", spec.Base)
	}
	if base.OKLCH.H != 250 {
		t.Errorf("base hue = %d, want remembered 250", base.OKLCH.H)
	}
}

// invalidHSLToolbox builds every HSL colour as invalid.
type invalidHSLToolbox struct {
	colour.Toolbox
}

func (invalidHSLToolbox) HSL(h, s, l, alpha float64) colour.Colour {
	return colour.Invalid(colour.ErrInvalidColour)
}

func TestGenerateEmptySweepUsesCanonical(t *testing.T) {
	tb := colour.NewToolbox()
	canonical := tb.HSL(200, 76, 36, 1)
	req := hslRequest(tb, canonical, VaryLightness, 4)

	p := NewGenerator(invalidHSLToolbox{tb}, nil).Generate(req)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want the single canonical swatch", p.Len())
	}
	got := p.Colours[0]
	if got.HSL != (colour.HSL{H: 200, S: 76, L: 36}) || got.Opacity != 1 {
		t.Errorf("swatch = %+v opacity %v, want the canonical colour", got.HSL, got.Opacity)
	}
	if hex := got.Colour().Hex(); hex != canonical.Hex() {
		t.Errorf("swatch hex = %s, want %s", hex, canonical.Hex())
	}
	if p.Count != 4 || p.Base.Hex() != canonical.Hex() {
		t.Errorf("palette = count %d base %s", p.Count, p.Base.Hex())
	}
}

func TestGenerateEmptySweepWithoutCanonical(t *testing.T) {
	tb := colour.NewToolbox()
	req := hslRequest(tb, tb.HSL(200, 76, 36, 1), VaryLightness, 4)
	req.Canonical = colour.Invalid(colour.ErrInvalidColour)

	p := NewGenerator(invalidHSLToolbox{tb}, nil).Generate(req)
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0 when nothing is valid", p.Len())
	}
}

func TestGenerateSwatchChromaMatchesDisplay(t *testing.T) {
	tb := colour.NewToolbox()
	canonical := tb.OKLCH(60, 0.15, 30, 1)
	mem := params.SeedHueMemory(canonical)
	req := Request{
		Vary:      VaryOKLCHL,
		Count:     5,
		Derived:   params.Derive(tb, params.Inputs{Model: params.ModelOKLCH}, canonical, mem),
		Memory:    mem,
		Canonical: canonical,
	}

	p := NewGenerator(tb, nil).Generate(req)
	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	for i, g := range p.All() {
		limit := colour.MaxSRGBChroma(g.OKLCH.L, g.OKLCH.H, colour.StaticMaxChroma)
		if g.OKLCH.C > limit+1e-4 {
			t.Errorf("swatch %d chroma = %v at L %v, above the sRGB limit %v", i, g.OKLCH.C, g.OKLCH.L, limit)
		}
	}
	if last := p.Colours[4]; last.OKLCH.L != 100 || last.OKLCH.C != 0 {
		t.Errorf("white swatch = %+v, want L 100 and no chroma", last.OKLCH)
	}
}
