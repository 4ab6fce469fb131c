package params

import (
	"math"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

// minChromaScale is the smallest gamut maximum trusted for percent scaling.
const minChromaScale = 0.0001

// Derived is the result of a derivation: both models' display parameters,
// the base opacity and the hue the HSL model effectively uses.
type Derived struct {
	HSL     HSLParams   `json:"hsl"`
	OKLCH   OKLCHParams `json:"oklch"`
	Opacity float64     `json:"opacity"`
	// EffectiveHSLHue equals HSL.H unless the HSL side is achromatic, in
	// which case it is the remembered HSL hue.
	EffectiveHSLHue int `json:"effectiveHslHue"`
}

// chromaScale returns the trusted gamut maximum at (l, h) used to convert
// between chroma percent and absolute chroma, plus the true maximum used to
// bound absolute chroma.
func chromaScale(tb colour.Toolbox, l, h float64) (scale, limit float64) {
	limit = tb.MaxSRGBChroma(l, h, colour.StaticMaxChroma)
	scale = limit
	if scale < minChromaScale {
		scale = colour.StaticMaxChroma
	}
	return scale, limit
}

// PercentToAbs converts a chroma percent at (l, h) into absolute chroma,
// bounded by the sRGB gamut at that point.
func PercentToAbs(tb colour.Toolbox, pct, l, h float64) float64 {
	scale, limit := chromaScale(tb, l, h)
	return math.Min(math.Max(0, pct/100*scale), math.Max(0, limit))
}

// AbsToPercent converts an absolute chroma at (l, h) into an integer percent
// of the gamut maximum, clamped to [0, 100].
func AbsToPercent(tb colour.Toolbox, abs, l, h float64) int {
	if abs <= 0 {
		return 0
	}
	scale, _ := chromaScale(tb, l, h)
	return clampInt(abs/scale*100, 0, 100)
}

// Derive resolves the active model's raw inputs into both models' display
// parameters. Unparseable inputs fall back to the canonical colour, hues to
// mem. It never fails; every output is clamped and rounded.
func Derive(tb colour.Toolbox, in Inputs, canonical colour.Colour, mem HueMemory) Derived {
	d := Derived{Opacity: 1}
	if canonical.IsValid() {
		d.Opacity = canonical.Alpha()
	}

	switch in.Model {
	case ModelOKLCH:
		deriveFromOKLCH(tb, in.OKLCH, canonical, mem, &d)
	default:
		deriveFromHSL(tb, in.HSL, canonical, mem, &d)
	}
	return d
}

func deriveFromHSL(tb colour.Toolbox, in HSLInputs, canonical colour.Colour, mem HueMemory, d *Derived) {
	master := canonical.HSL()
	masterOK := canonical.OKLCH()

	h, ok := ParseInt(in.Hue)
	if !ok {
		h = mem.HSL()
	}
	s, ok := ParseInt(in.Saturation)
	if !ok {
		s = master.S
	}
	l, ok := ParseInt(in.Lightness)
	if !ok {
		l = master.L
	}

	d.HSL = HSLParams{
		H: int(colour.NormalizeHue(h)),
		S: clampInt(s, 0, 100),
		L: clampInt(l, 0, 100),
	}
	d.EffectiveHSLHue = d.HSL.H
	if d.HSL.S == 0 {
		d.EffectiveHSLHue = int(colour.NormalizeHue(mem.HSL()))
	}

	lch := masterOK
	if tmp := tb.HSL(float64(d.EffectiveHSLHue), float64(d.HSL.S), float64(d.HSL.L), 1); tmp.IsValid() {
		lch = tmp.OKLCH()
	}

	oL := clampInt(lch.L, 0, 100)
	oH := colour.NormalizeHue(lch.H)
	if lch.C < AchromaticChroma {
		oH = colour.NormalizeHue(mem.OKLCH())
	}
	_, limit := chromaScale(tb, float64(oL), oH)
	cAbs := math.Min(math.Max(0, lch.C), math.Max(0, limit))

	d.OKLCH = OKLCHParams{
		L:        oL,
		H:        int(oH),
		CPercent: AbsToPercent(tb, cAbs, float64(oL), oH),
		CAbs:     colour.Round4(cAbs),
	}
}

func deriveFromOKLCH(tb colour.Toolbox, in OKLCHInputs, canonical colour.Colour, mem HueMemory, d *Derived) {
	master := canonical.HSL()
	masterOK := canonical.OKLCH()

	l, ok := ParseInt(in.Lightness)
	if !ok {
		l = masterOK.L
	}
	oL := clampInt(l, 0, 100)

	h, ok := ParseInt(in.Hue)
	if !ok {
		h = mem.OKLCH()
	}
	oH := colour.NormalizeHue(h)

	pct, ok := ParseFloat(in.Chroma)
	if !ok {
		pct = float64(AbsToPercent(tb, masterOK.C, float64(oL), oH))
	}
	cPct := clampInt(pct, 0, 100)
	cAbs := PercentToAbs(tb, float64(cPct), float64(oL), oH)

	d.OKLCH = OKLCHParams{
		L:        oL,
		H:        int(oH),
		CPercent: cPct,
		CAbs:     colour.Round4(cAbs),
	}

	effHue := oH
	if cAbs < AchromaticChroma {
		effHue = colour.NormalizeHue(mem.OKLCH())
	}

	hsl := master
	if tmp := tb.OKLCH(float64(oL), colour.Round4(cAbs), effHue, 1); tmp.IsValid() {
		hsl = tmp.HSL()
	}

	d.HSL = HSLParams{
		H: int(colour.NormalizeHue(hsl.H)),
		S: clampInt(hsl.S, 0, 100),
		L: clampInt(hsl.L, 0, 100),
	}
	if d.HSL.S == 0 {
		d.HSL.H = int(colour.NormalizeHue(mem.HSL()))
	}
	d.EffectiveHSLHue = d.HSL.H
}
