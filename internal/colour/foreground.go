package colour

// Text colour search parameters.
const (
	textTargetContrast = 4.0
	textSaturation     = 70.0
)

// ContrastingText picks a text colour of the given hue that reads on bg.
//
// Candidates are hsl(hue, 70%, L). Dark backgrounds (luminance below 0.4) are
// searched from L=50 upwards, light ones from L=49 downwards. The first
// candidate reaching a 4:1 ratio wins; otherwise the best one seen is used.
// An invalid background yields white for blue-violet hues and black for the
// rest.
func ContrastingText(bg Colour, hue float64) Colour {
	if !bg.IsValid() {
		if hue > 180 && hue < 300 {
			return FromRGB(255, 255, 255, 1)
		}
		return FromRGB(0, 0, 0, 1)
	}

	opaque := bg.Opaque()
	bgLum := Luminance(opaque)
	up := bgLum < 0.4

	start, end, step := 49, 0, -1
	if up {
		start, end, step = 50, 100, 1
	}

	var best Colour
	bestContrast := 0.0
	for l := start; (up && l <= end) || (!up && l >= end); l += step {
		candidate := FromHSL(hue, textSaturation, float64(l), 1)
		if !candidate.IsValid() {
			continue
		}
		contrast := ContrastRatio(candidate, opaque)
		if contrast >= textTargetContrast {
			return candidate
		}
		if contrast > bestContrast {
			bestContrast = contrast
			best = candidate
		}
	}

	if best.IsValid() {
		return best
	}
	if bgLum > 0.5 {
		return FromHSL(hue, textSaturation, 5, 1)
	}
	return FromHSL(hue, textSaturation, 95, 1)
}
