package sweep

import (
	"math"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

// hueRangeMax is the end of every hue sweep.
const hueRangeMax = 359

// Spec describes one sweep: the parameter, the number of swatches and the
// range to cover. Base and Max are in the parameter's own units: degrees,
// percent or absolute chroma.
type Spec struct {
	Vary  Vary
	Count int
	Base  float64
	Max   float64
}

// Values returns Count normalised values from Base to Max, both inclusive.
//
// Linear parameters are interpolated evenly. Hue parameters run forward
// from Base to Max when Base <= Max. When Base > Max the sweep takes the
// shorter arc: it wraps forward through 0 if that arc is at most 180
// degrees, otherwise it runs backwards (100 to 10 gives 100, 55, 10). The
// older rule of wrapping forward whenever Base exceeds Max by less than 180
// degrees takes the longer arc instead (100 to 10 forward through 270
// degrees) and is not followed. Plan always sweeps hue towards 359, so only
// a hand-built Spec reaches this branch.
//
// A range that collapses (equal ends, or a full 360 degree turn) repeats the
// base value.
func (s Spec) Values() []float64 {
	n := s.Count
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.normalise(s.raw(i, n))
	}
	return out
}

func (s Spec) raw(i, n int) float64 {
	if n == 1 {
		return s.Base
	}
	span := s.Max - s.Base
	t := float64(i) / float64(n-1)

	if !s.Vary.IsHue() {
		if math.Abs(span) < 0.0001 {
			return s.Base
		}
		return s.Base + span*t
	}

	if hueIndex(s.Base) == hueIndex(s.Max) {
		return s.Base
	}
	if s.Base > s.Max {
		forward := math.Mod(s.Max-s.Base+360, 360)
		if forward <= 180 {
			return math.Mod(s.Base+forward*t, 360)
		}
	}
	return s.Base + span*t
}

func (s Spec) normalise(v float64) float64 {
	switch {
	case s.Vary.IsHue():
		return colour.NormalizeHue(v)
	case s.Vary == VaryOKLCHC:
		return math.Max(0, math.Min(s.Max, colour.Round4(v)))
	default:
		return math.Max(0, math.Min(100, math.Round(v)))
	}
}

// hueIndex returns the whole degree a hue rounds to.
func hueIndex(h float64) int {
	return int(colour.NormalizeHue(h))
}
