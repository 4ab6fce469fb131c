package sweep

import (
	"fmt"
	"math"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
)

// negligibleChroma keeps an OKLCH hue term meaningful for a colour that is
// achromatic in practice.
const negligibleChroma = 0.0001

// Base is the fixed part of a sweep: every swatch copies it and replaces
// one parameter. OKLCH chroma is read from CPercent.
type Base struct {
	HSL     params.HSLParams
	OKLCH   params.OKLCHParams
	Opacity float64
}

// BuildVariant constructs the colour for one swept value. The toolbox alone
// decides whether the result is valid.
//
// OKLCH swatches take their absolute chroma from value when sweeping chroma
// and from the base percent otherwise. An achromatic OKLCH swatch uses
// lastOKLCHHue instead of the base hue unless the hue itself is swept.
func BuildVariant(tb colour.Toolbox, v Vary, value float64, base Base, lastOKLCHHue float64) colour.Colour {
	var chroma float64
	if v == VaryOKLCHC {
		chroma = value
	} else {
		maxC := tb.MaxSRGBChroma(float64(base.OKLCH.L), float64(base.OKLCH.H), colour.StaticMaxChroma)
		if maxC <= 0.0001 {
			maxC = colour.StaticMaxChroma
		}
		chroma = float64(base.OKLCH.CPercent) / 100 * maxC
	}
	if chroma < params.AchromaticChroma && v != VaryOKLCHC {
		chroma = negligibleChroma
	}

	hue := float64(base.OKLCH.H)
	if chroma < params.AchromaticChroma && v != VaryOKLCHH && v != VaryOKLCHC {
		hue = lastOKLCHHue
	}
	if v == VaryOKLCHC && value < params.AchromaticChroma {
		hue = lastOKLCHHue
	}

	h, s, l := float64(base.HSL.H), float64(base.HSL.S), float64(base.HSL.L)
	switch v {
	case VaryHue:
		return tb.HSL(value, s, l, base.Opacity)
	case VarySaturation:
		return tb.HSL(h, value, l, base.Opacity)
	case VaryLightness:
		return tb.HSL(h, s, value, base.Opacity)
	case VaryOKLCHL:
		return tb.OKLCH(value, colour.Round4(chroma), hue, base.Opacity)
	case VaryOKLCHC:
		return tb.OKLCH(float64(base.OKLCH.L), colour.Round4(value), hue, base.Opacity)
	case VaryOKLCHH:
		return tb.OKLCH(float64(base.OKLCH.L), colour.Round4(chroma), value, base.Opacity)
	case VaryOpacity:
		return tb.HSL(h, s, l, math.Max(0, math.Min(1, value/100)))
	default:
		return colour.Invalid(fmt.Errorf("%w: %s", ErrUnknownVary, v))
	}
}
