package sweep

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
)

// minChromaMax is the end of a chroma sweep whose gamut maximum vanished.
const minChromaMax = 0.0001

// Request is the input to one palette generation.
type Request struct {
	Vary      Vary
	Count     int
	Derived   params.Derived
	Memory    params.HueMemory
	Canonical colour.Colour
}

// Generator turns derived parameters into palettes.
type Generator struct {
	toolbox colour.Toolbox
	logger  hclog.Logger
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(tb colour.Toolbox, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{toolbox: tb, logger: logger.Named("sweep")}
}

// Plan works out the sweep range and the fixed base for req.
func (g *Generator) Plan(req Request) (Spec, Base) {
	d := req.Derived
	base := Base{
		HSL:     params.HSLParams{H: int(colour.NormalizeHue(float64(d.HSL.H))), S: d.HSL.S, L: d.HSL.L},
		OKLCH:   d.OKLCH,
		Opacity: d.Opacity,
	}
	base.OKLCH.H = int(colour.NormalizeHue(float64(d.OKLCH.H)))

	count := req.Count
	if count < 1 {
		count = 1
	}
	spec := Spec{Vary: req.Vary, Count: count, Max: 100}

	switch req.Vary {
	case VaryHue:
		spec.Base, spec.Max = float64(base.HSL.H), hueRangeMax
	case VarySaturation:
		spec.Base = float64(base.HSL.S)
	case VaryLightness:
		spec.Base = float64(base.HSL.L)
	case VaryOKLCHL:
		spec.Base = float64(base.OKLCH.L)
	case VaryOKLCHH:
		spec.Base, spec.Max = float64(base.OKLCH.H), hueRangeMax
	case VaryOpacity:
		spec.Base = d.Opacity * 100
	case VaryOKLCHC:
		hue := float64(base.OKLCH.H)
		if d.OKLCH.CAbs < params.AchromaticChroma {
			hue = colour.NormalizeHue(req.Memory.OKLCH())
			base.OKLCH.H = int(hue)
		}
		maxC := g.toolbox.MaxSRGBChroma(float64(base.OKLCH.L), hue, colour.StaticMaxChroma)
		if maxC < minChromaMax {
			maxC = minChromaMax
		}
		spec.Max = maxC
		spec.Base = math.Min(d.OKLCH.CAbs, maxC)
	}

	spec.Base = colour.Round4(spec.Base)
	if req.Vary == VaryOKLCHC {
		spec.Max = colour.Round4(spec.Max)
	} else {
		spec.Max = math.Round(spec.Max)
	}
	return spec, base
}

// Generate builds the palette for req. Swatches the toolbox rejects are
// replaced by the base colour, or dropped when that fails too. An empty
// sweep falls back to the canonical colour.
func (g *Generator) Generate(req Request) *Palette {
	spec, base := g.Plan(req)
	values := spec.Values()
	lastHue := colour.NormalizeHue(req.Memory.OKLCH())

	g.logger.Debug("generating palette", "vary", spec.Vary, "count", spec.Count, "base", spec.Base, "max", spec.Max)

	colours := make([]GeneratedColour, 0, len(values))
	for i, v := range values {
		c := BuildVariant(g.toolbox, spec.Vary, v, base, lastHue)
		if c.IsValid() {
			colours = append(colours, newGeneratedColour(c))
			continue
		}

		g.logger.Warn("generated colour invalid, using base", "index", i, "vary", spec.Vary, "value", v, "error", c.Err())
		fallback := g.toolbox.HSL(float64(base.HSL.H), float64(base.HSL.S), float64(base.HSL.L), base.Opacity)
		if !fallback.IsValid() {
			g.logger.Error("base colour also invalid, skipping swatch", "index", i, "hsl", base.HSL, "opacity", base.Opacity)
			continue
		}
		colours = append(colours, newGeneratedColour(fallback))
	}

	if len(colours) == 0 && req.Canonical.IsValid() {
		g.logger.Warn("sweep produced no colours, using canonical colour")
		colours = append(colours, newGeneratedColour(req.Canonical))
	}

	return NewPalette(spec.Vary, spec.Count, req.Canonical, colours)
}
