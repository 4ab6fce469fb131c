// Package sweep generates palettes by sweeping one colour parameter from the
// base value towards the end of its range.
package sweep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/palettesweep/internal/params"
)

// ErrUnknownVary is returned for an unrecognised sweep parameter name.
var ErrUnknownVary = errors.New("unknown vary parameter")

// Vary is the parameter a palette sweeps.
type Vary int

const (
	VaryHue Vary = iota
	VarySaturation
	VaryLightness
	VaryOKLCHL
	VaryOKLCHC
	VaryOKLCHH
	VaryOpacity
)

// Varies lists every sweep parameter.
var Varies = []Vary{VaryHue, VarySaturation, VaryLightness, VaryOKLCHL, VaryOKLCHC, VaryOKLCHH, VaryOpacity}

var varyNames = map[Vary]string{
	VaryHue:        "hue",
	VarySaturation: "saturation",
	VaryLightness:  "lightness",
	VaryOKLCHL:     "oklch_l",
	VaryOKLCHC:     "oklch_c",
	VaryOKLCHH:     "oklch_h",
	VaryOpacity:    "opacity",
}

var varyDisplayNames = map[Vary]string{
	VaryHue:        "Hue",
	VarySaturation: "Saturation",
	VaryLightness:  "Lightness",
	VaryOKLCHL:     "Lightness (OKLCH)",
	VaryOKLCHC:     "Chroma (OKLCH)",
	VaryOKLCHH:     "Hue (OKLCH)",
	VaryOpacity:    "Opacity",
}

// String returns the parameter's identifier, e.g. "oklch_c".
func (v Vary) String() string {
	if s, ok := varyNames[v]; ok {
		return s
	}
	return fmt.Sprintf("vary(%d)", int(v))
}

// DisplayName returns the label used in export headers.
func (v Vary) DisplayName() string {
	if s, ok := varyDisplayNames[v]; ok {
		return s
	}
	return "Parameter"
}

// ParseVary converts an identifier such as "lightness" into a Vary.
func ParseVary(s string) (Vary, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Varies {
		if varyNames[v] == in {
			return v, nil
		}
	}
	names := make([]string, len(Varies))
	for i, v := range Varies {
		names[i] = v.String()
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownVary, s, strings.Join(names, ", "))
}

// IsHue reports whether the parameter is circular.
func (v Vary) IsHue() bool {
	return v == VaryHue || v == VaryOKLCHH
}

// AvailableFor reports whether the parameter can be chosen while model is
// active. Opacity is shared by both models.
func (v Vary) AvailableFor(model params.Model) bool {
	switch v {
	case VaryHue, VarySaturation, VaryLightness:
		return model == params.ModelHSL
	case VaryOKLCHL, VaryOKLCHC, VaryOKLCHH:
		return model == params.ModelOKLCH
	case VaryOpacity:
		return true
	default:
		return false
	}
}

// VariesFor returns the parameters available for model.
func VariesFor(model params.Model) []Vary {
	var out []Vary
	for _, v := range Varies {
		if v.AvailableFor(model) {
			out = append(out, v)
		}
	}
	return out
}

// DefaultVary returns the parameter selected for a model when none is given.
func DefaultVary(model params.Model) Vary {
	if model == params.ModelOKLCH {
		return VaryOKLCHL
	}
	return VaryLightness
}

// MarshalText implements encoding.TextMarshaler.
func (v Vary) MarshalText() ([]byte, error) {
	if _, ok := varyNames[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVary, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vary) UnmarshalText(text []byte) error {
	parsed, err := ParseVary(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
