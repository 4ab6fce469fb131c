package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// StaticMaxChroma is the reference absolute chroma used when the sRGB gamut
// maximum at a lightness/hue is too small to scale against.
const StaticMaxChroma = 0.4

// gamutEpsilon absorbs float noise at the sRGB cube faces.
const gamutEpsilon = 1e-9

// InGamut reports whether oklch(l% c h) lies inside sRGB.
func InGamut(l, c, h float64) bool {
	if !finite(l, c, h) {
		return false
	}
	col := colorful.OkLch(l/100, c, h)
	return within(col.R) && within(col.G) && within(col.B)
}

func within(v float64) bool {
	return v >= -gamutEpsilon && v <= 1+gamutEpsilon
}

// MaxSRGBChroma returns the largest absolute chroma at lightness l (percent)
// and hue h that stays inside sRGB, searching no higher than fallbackMax
// (StaticMaxChroma when fallbackMax is not positive). It returns 0 at the
// black and white ends where no chroma is representable.
func MaxSRGBChroma(l, h, fallbackMax float64) float64 {
	if !finite(l, h) || l <= 0 || l >= 100 {
		return 0
	}
	hi := fallbackMax
	if !finite(hi) || hi <= 0 {
		hi = StaticMaxChroma
	}
	if InGamut(l, hi, h) {
		return hi
	}
	lo := 0.0
	for i := 0; i < 40 && hi-lo > 1e-7; i++ {
		mid := (lo + hi) / 2
		if InGamut(l, mid, h) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// ChromaScale returns the gamut maximum used to convert between chroma
// percent and absolute chroma at (l, h). A degenerate maximum below 0.0001 is
// replaced by StaticMaxChroma.
func ChromaScale(l, h float64) float64 {
	m := MaxSRGBChroma(l, h, StaticMaxChroma)
	if m < 0.0001 {
		return StaticMaxChroma
	}
	return m
}

// Round4 rounds v to four decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
