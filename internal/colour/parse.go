package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	funcRegex   = regexp.MustCompile(`^([a-z]+)\s*\((.*)\)$`)
	hexRegex    = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	numberRegex = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:e[+-]?\d+)?)(%|deg|rad|grad|turn)?$`)
)

// component is one parsed argument of a colour function.
type component struct {
	value float64
	unit  string
}

// Parse reads a CSS colour string: hex (3, 4, 6 or 8 digits), rgb()/rgba(),
// hsl()/hsla(), oklch() and named colours. It never panics; failures are
// returned as an invalid Colour whose Err wraps ErrInvalidColour.
func Parse(s string) Colour {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Invalid(fmt.Errorf("%w: empty string", ErrInvalidColour))
	}

	if strings.HasPrefix(in, "#") {
		return parseHex(in, s)
	}

	if m := funcRegex.FindStringSubmatch(in); m != nil {
		comps, alpha, err := splitArgs(m[2])
		if err != nil {
			return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, s, err))
		}
		switch m[1] {
		case "rgb", "rgba":
			return parseRGBFunc(comps, alpha, s)
		case "hsl", "hsla":
			return parseHSLFunc(comps, alpha, s)
		case "oklch":
			return parseOKLCHFunc(comps, alpha, s)
		default:
			return Invalid(fmt.Errorf("%w: unsupported function %q", ErrInvalidColour, m[1]))
		}
	}

	if in == "transparent" {
		return FromRGB(0, 0, 0, 0)
	}
	if named, ok := colornames.Map[in]; ok {
		return FromRGB(named.R, named.G, named.B, 1)
	}

	return Invalid(fmt.Errorf("%w: %q", ErrInvalidColour, s))
}

func parseHex(in, orig string) Colour {
	if !hexRegex.MatchString(in) {
		return Invalid(fmt.Errorf("%w: malformed hex %q", ErrInvalidColour, orig))
	}
	digits := in[1:]
	alpha := 1.0

	switch len(digits) {
	case 4:
		a, _ := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		alpha = float64(a) / 255
		digits = digits[:3]
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 255
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	return fromColorful(c, alpha)
}

// splitArgs splits the inside of a colour function into its components and
// optional alpha. Both the legacy comma syntax and the space/slash syntax are
// accepted.
func splitArgs(body string) ([]component, *component, error) {
	var alphaPart string
	if i := strings.Index(body, "/"); i >= 0 {
		alphaPart = strings.TrimSpace(body[i+1:])
		body = body[:i]
	}

	fields := strings.Fields(strings.ReplaceAll(body, ",", " "))
	comps := make([]component, 0, len(fields))
	for _, f := range fields {
		c, err := parseComponent(f)
		if err != nil {
			return nil, nil, err
		}
		comps = append(comps, c)
	}

	if len(comps) == 4 && alphaPart == "" {
		a := comps[3]
		return comps[:3], &a, nil
	}
	if len(comps) != 3 {
		return nil, nil, fmt.Errorf("expected 3 components, got %d", len(comps))
	}
	if alphaPart == "" {
		return comps, nil, nil
	}
	a, err := parseComponent(alphaPart)
	if err != nil {
		return nil, nil, err
	}
	return comps, &a, nil
}

func parseComponent(f string) (component, error) {
	if f == "none" {
		return component{}, nil
	}
	m := numberRegex.FindStringSubmatch(f)
	if m == nil {
		return component{}, fmt.Errorf("malformed component %q", f)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return component{}, fmt.Errorf("malformed component %q: %w", f, err)
	}
	return component{value: v, unit: m[2]}, nil
}

func alphaOf(a *component) (float64, AlphaStyle, error) {
	if a == nil {
		return 1, AlphaNumber, nil
	}
	switch a.unit {
	case "":
		return clamp(a.value, 0, 1), AlphaNumber, nil
	case "%":
		return clamp(a.value/100, 0, 1), AlphaPercent, nil
	default:
		return 0, AlphaNumber, fmt.Errorf("alpha cannot have unit %q", a.unit)
	}
}

func hueOf(c component) (float64, error) {
	switch c.unit {
	case "", "deg":
		return c.value, nil
	case "rad":
		return c.value * 180 / math.Pi, nil
	case "grad":
		return c.value * 0.9, nil
	case "turn":
		return c.value * 360, nil
	default:
		return 0, fmt.Errorf("hue cannot have unit %q", c.unit)
	}
}

func percentOf(c component) (float64, error) {
	switch c.unit {
	case "", "%":
		return c.value, nil
	default:
		return 0, fmt.Errorf("expected a percentage, got unit %q", c.unit)
	}
}

func parseRGBFunc(comps []component, a *component, orig string) Colour {
	var ch [3]uint8
	for i, c := range comps {
		var v float64
		switch c.unit {
		case "":
			v = c.value
		case "%":
			v = c.value / 100 * 255
		default:
			return Invalid(fmt.Errorf("%w: %q: rgb channel cannot have unit %q", ErrInvalidColour, orig, c.unit))
		}
		ch[i] = uint8(math.Round(clamp(v, 0, 255)))
	}
	alpha, style, err := alphaOf(a)
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	return FromRGB(ch[0], ch[1], ch[2], alpha).WithAlpha(alpha, style)
}

func parseHSLFunc(comps []component, a *component, orig string) Colour {
	h, err := hueOf(comps[0])
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	s, err := percentOf(comps[1])
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	l, err := percentOf(comps[2])
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	alpha, style, err := alphaOf(a)
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	return FromHSL(h, clamp(s, 0, 100), clamp(l, 0, 100), alpha).WithAlpha(alpha, style)
}

func parseOKLCHFunc(comps []component, a *component, orig string) Colour {
	var l float64
	switch comps[0].unit {
	case "%":
		l = comps[0].value
	case "":
		l = comps[0].value * 100
	default:
		return Invalid(fmt.Errorf("%w: %q: lightness cannot have unit %q", ErrInvalidColour, orig, comps[0].unit))
	}

	var c float64
	switch comps[1].unit {
	case "":
		c = comps[1].value
	case "%":
		c = comps[1].value / 100 * StaticMaxChroma
	default:
		return Invalid(fmt.Errorf("%w: %q: chroma cannot have unit %q", ErrInvalidColour, orig, comps[1].unit))
	}

	h, err := hueOf(comps[2])
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	alpha, style, err := alphaOf(a)
	if err != nil {
		return Invalid(fmt.Errorf("%w: %q: %v", ErrInvalidColour, orig, err))
	}
	return FromOKLCH(clamp(l, 0, 100), math.Max(0, c), h, alpha).WithAlpha(alpha, style)
}
