// Package colour provides the colour value type and the conversions, parsing,
// formatting and gamut helpers the palette engine builds on.
package colour

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned (wrapped) for any colour that could not be
// parsed or constructed.
var ErrInvalidColour = errors.New("invalid colour")

// Space identifies the colour model a Colour was constructed in.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSL
	SpaceOKLCH
)

// String returns the CSS function name for the space.
func (s Space) String() string {
	switch s {
	case SpaceHSL:
		return "hsl"
	case SpaceOKLCH:
		return "oklch"
	default:
		return "rgb"
	}
}

// AlphaStyle controls how alpha is written in functional colour strings.
type AlphaStyle int

const (
	AlphaNumber  AlphaStyle = iota // 0.5
	AlphaPercent                   // 50%
)

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// OKLCH holds lightness in percent, absolute chroma and hue in degrees.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Colour is an immutable colour value. The zero value is invalid.
//
// A Colour remembers the model it was constructed in together with the
// coordinates it was given, so an achromatic hsl(200, 0%, 50%) still reports
// hue 200 from HSL(). Conversions into the other model go through sRGB.
type Colour struct {
	rgb   colorful.Color
	alpha float64
	style AlphaStyle
	space Space
	hsl   HSL
	oklch OKLCH
	ok    bool
	err   error
}

// Invalid returns an invalid Colour carrying err.
func Invalid(err error) Colour {
	if err == nil {
		err = ErrInvalidColour
	}
	return Colour{err: err}
}

// FromHSL builds a colour from hue (degrees), saturation and lightness
// (percent) and alpha in [0,1].
func FromHSL(h, s, l, alpha float64) Colour {
	if !finite(h, s, l, alpha) {
		return Invalid(fmt.Errorf("%w: non-finite hsl component", ErrInvalidColour))
	}
	if s < 0 || s > 100 || l < 0 || l > 100 {
		return Invalid(fmt.Errorf("%w: hsl(%g, %g%%, %g%%) out of range", ErrInvalidColour, h, s, l))
	}
	if alpha < 0 || alpha > 1 {
		return Invalid(fmt.Errorf("%w: alpha %g out of range", ErrInvalidColour, alpha))
	}
	h = wrapHue(h)
	return Colour{
		rgb:   colorful.Hsl(h, s/100, l/100).Clamped(),
		alpha: alpha,
		space: SpaceHSL,
		hsl:   HSL{H: h, S: s, L: l},
		ok:    true,
	}
}

// FromOKLCH builds a colour from OKLCH lightness (percent), absolute chroma
// and hue (degrees). Colours outside sRGB are mapped in by reducing chroma
// at constant lightness and hue; the requested coordinates are kept.
func FromOKLCH(l, c, h, alpha float64) Colour {
	if !finite(l, c, h, alpha) {
		return Invalid(fmt.Errorf("%w: non-finite oklch component", ErrInvalidColour))
	}
	if l < 0 || l > 100 || c < 0 {
		return Invalid(fmt.Errorf("%w: oklch(%g%% %g %g) out of range", ErrInvalidColour, l, c, h))
	}
	if alpha < 0 || alpha > 1 {
		return Invalid(fmt.Errorf("%w: alpha %g out of range", ErrInvalidColour, alpha))
	}
	h = wrapHue(h)
	mapped := c
	if !InGamut(l, c, h) {
		mapped = MaxSRGBChroma(l, h, c)
	}
	return Colour{
		rgb:   colorful.OkLch(l/100, mapped, h).Clamped(),
		alpha: alpha,
		space: SpaceOKLCH,
		oklch: OKLCH{L: l, C: c, H: h},
		ok:    true,
	}
}

// FromRGB builds a colour from 8-bit channels and alpha in [0,1].
func FromRGB(r, g, b uint8, alpha float64) Colour {
	if !finite(alpha) || alpha < 0 || alpha > 1 {
		return Invalid(fmt.Errorf("%w: alpha %g out of range", ErrInvalidColour, alpha))
	}
	return Colour{
		rgb:   colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		alpha: alpha,
		space: SpaceRGB,
		ok:    true,
	}
}

func fromColorful(c colorful.Color, alpha float64) Colour {
	return Colour{rgb: c.Clamped(), alpha: alpha, space: SpaceRGB, ok: true}
}

// IsValid reports whether the colour was constructed successfully.
func (c Colour) IsValid() bool { return c.ok }

// Err returns the construction error of an invalid colour, nil otherwise.
func (c Colour) Err() error {
	if c.ok {
		return nil
	}
	if c.err == nil {
		return ErrInvalidColour
	}
	return c.err
}

// Space returns the model the colour was constructed in.
func (c Colour) Space() Space { return c.space }

// Alpha returns the alpha channel in [0,1].
func (c Colour) Alpha() float64 { return c.alpha }

// AlphaStyle returns the alpha formatting hint.
func (c Colour) AlphaStyle() AlphaStyle { return c.style }

// WithAlpha returns a copy of the colour with alpha clamped to [0,1] and the
// given formatting hint.
func (c Colour) WithAlpha(alpha float64, style AlphaStyle) Colour {
	if !c.ok {
		return c
	}
	if math.IsNaN(alpha) {
		alpha = 1
	}
	c.alpha = clamp(alpha, 0, 1)
	c.style = style
	return c
}

// HSL returns the colour in HSL. Colours built in HSL report their own
// coordinates; others are converted from sRGB.
func (c Colour) HSL() HSL {
	if !c.ok {
		return HSL{}
	}
	if c.space == SpaceHSL {
		return c.hsl
	}
	h, s, l := c.rgb.Hsl()
	if s < 1e-9 {
		h, s = 0, 0
	}
	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}
}

// OKLCH returns the colour in OKLCH. Colours built in OKLCH report their own
// coordinates; others are converted from sRGB.
func (c Colour) OKLCH() OKLCH {
	if !c.ok {
		return OKLCH{}
	}
	if c.space == SpaceOKLCH {
		return c.oklch
	}
	l, ch, h := c.rgb.OkLch()
	if ch < 1e-7 || isGrey(c.rgb) {
		ch, h = 0, 0
	}
	return OKLCH{L: clamp(l*100, 0, 100), C: ch, H: wrapHue(h)}
}

// RGB returns the 8-bit sRGB channels.
func (c Colour) RGB() RGB {
	r, g, b := c.rgb.RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Colour) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.alpha * 0xffff))
	r = uint32(math.Round(c.rgb.R*0xffff)) * a / 0xffff
	g = uint32(math.Round(c.rgb.G*0xffff)) * a / 0xffff
	b = uint32(math.Round(c.rgb.B*0xffff)) * a / 0xffff
	return
}

// Opaque returns the colour with alpha forced to 1.
func (c Colour) Opaque() Colour {
	return c.WithAlpha(1, c.style)
}

// isGrey reports whether all three channels are equal. The OKLab matrices
// leave greys with a residual chroma of up to 1e-4.
func isGrey(c colorful.Color) bool {
	return math.Abs(c.R-c.G) < 1e-9 && math.Abs(c.G-c.B) < 1e-9
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
