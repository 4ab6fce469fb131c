// Package params holds the per-model colour parameter sets, the raw field
// inputs they are derived from, and the hue memory that keeps achromatic
// colours from losing their hue.
package params

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned when a colour model name is not recognised.
var ErrUnknownModel = errors.New("unknown colour model")

// AchromaticChroma is the absolute OKLCH chroma below which hue is ignored.
const AchromaticChroma = 0.001

// Model is one of the two editable colour models.
type Model int

const (
	ModelHSL Model = iota
	ModelOKLCH
)

// Models lists every model in display order.
var Models = []Model{ModelHSL, ModelOKLCH}

// String returns the model's lower-case name.
func (m Model) String() string {
	switch m {
	case ModelHSL:
		return "hsl"
	case ModelOKLCH:
		return "oklch"
	default:
		return fmt.Sprintf("model(%d)", int(m))
	}
}

// ParseModel converts a name such as "hsl" or "OKLCH" into a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hsl":
		return ModelHSL, nil
	case "oklch":
		return ModelOKLCH, nil
	default:
		return 0, fmt.Errorf("%w: %q (available: hsl, oklch)", ErrUnknownModel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) {
	if m != ModelHSL && m != ModelOKLCH {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// HSLParams is an HSL parameter set as shown to the user: hue in [0,359],
// saturation and lightness in [0,100].
type HSLParams struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Chromatic reports whether the saturation is above zero.
func (p HSLParams) Chromatic() bool { return p.S > 0 }

// OKLCHParams is an OKLCH parameter set as shown to the user. CPercent is
// chroma as a share of the sRGB maximum at (L, H); CAbs is the same chroma
// in absolute units, rounded to four decimals.
type OKLCHParams struct {
	L        int     `json:"l"`
	H        int     `json:"h"`
	CPercent int     `json:"cPercent"`
	CAbs     float64 `json:"cAbs"`
}

// Chromatic reports whether the absolute chroma reaches AchromaticChroma.
func (p OKLCHParams) Chromatic() bool { return p.CAbs >= AchromaticChroma }

// HSLInputs are the raw text values of the HSL panel fields.
type HSLInputs struct {
	Hue        string `json:"hue"`
	Saturation string `json:"saturation"`
	Lightness  string `json:"lightness"`
	Opacity    string `json:"opacity"`
}

// OKLCHInputs are the raw text values of the OKLCH panel fields. Chroma is a
// percentage of the sRGB maximum.
type OKLCHInputs struct {
	Lightness string `json:"lightness"`
	Chroma    string `json:"chroma"`
	Hue       string `json:"hue"`
	Opacity   string `json:"opacity"`
}

// Inputs is the state of both panels plus which one is active.
type Inputs struct {
	Model Model       `json:"model"`
	HSL   HSLInputs   `json:"hsl"`
	OKLCH OKLCHInputs `json:"oklch"`
}
