package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format names an output representation for a single colour.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatOKLCH Format = "oklch"
)

// Formats lists every supported output format.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatOKLCH}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown colour format %q (available: hex, rgb, hsl, oklch)", s)
}

// Translucent reports whether alpha is below 1.
func (c Colour) Translucent() bool {
	return c.alpha < 1
}

// Format renders the colour in f, switching to the alpha-carrying variant
// when the colour is translucent. Invalid colours render as "Invalid Color".
func (c Colour) Format(f Format) string {
	if !c.ok {
		return "Invalid Color"
	}
	alpha := c.Translucent()
	switch f {
	case FormatHSL:
		if alpha {
			return c.HSLAString()
		}
		return c.HSLString()
	case FormatRGB:
		if alpha {
			return c.RGBAString()
		}
		return c.RGBString()
	case FormatOKLCH:
		if alpha {
			return c.OKLCHAString()
		}
		return c.OKLCHString()
	default:
		if alpha {
			return c.HexAlpha()
		}
		return c.Hex()
	}
}

// Hex returns "#rrggbb".
func (c Colour) Hex() string {
	return c.rgb.Clamped().Hex()
}

// HexAlpha returns "#rrggbbaa".
func (c Colour) HexAlpha() string {
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(c.alpha*255)))
}

// RGBString returns "rgb(r, g, b)".
func (c Colour) RGBString() string {
	return c.RGB().String()
}

// RGBAString returns "rgba(r, g, b, a)".
func (c Colour) RGBAString() string {
	rgb := c.RGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, c.alphaString())
}

// HSLString returns "hsl(h, s%, l%)" with integer components.
func (c Colour) HSLString() string {
	h := c.HSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(NormalizeHue(h.H)), roundInt(h.S), roundInt(h.L))
}

// HSLAString returns "hsla(h, s%, l%, a)".
func (c Colour) HSLAString() string {
	h := c.HSL()
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", int(NormalizeHue(h.H)), roundInt(h.S), roundInt(h.L), c.alphaString())
}

// OKLCHString returns "oklch(L% C H)".
func (c Colour) OKLCHString() string {
	o := c.OKLCH()
	return fmt.Sprintf("oklch(%s%% %s %s)", trimFloat(o.L, 2), trimFloat(o.C, 4), trimFloat(o.H, 2))
}

// OKLCHAString returns "oklch(L% C H / A)".
func (c Colour) OKLCHAString() string {
	o := c.OKLCH()
	return fmt.Sprintf("oklch(%s%% %s %s / %s)", trimFloat(o.L, 2), trimFloat(o.C, 4), trimFloat(o.H, 2), c.alphaString())
}

func (c Colour) alphaString() string {
	if c.style == AlphaPercent {
		return trimFloat(c.alpha*100, 1) + "%"
	}
	return trimFloat(c.alpha, 3)
}

func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
