package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

const invalidBase = "Base color invalid"

// headerLines describes the palette: its base colour, the varied parameter
// with the swatch count, and the export notation.
func headerLines(p *sweep.Palette, opts Options) []string {
	if !p.Base.IsValid() {
		return []string{invalidBase}
	}
	count := p.Count
	if count < 1 {
		count = 1
	}
	return []string{
		"Palette based on " + baseDescription(p.Base, opts.Model),
		fmt.Sprintf("Varying: %s, Number of Swatches: %d", p.Vary.DisplayName(), count),
		"Export Format: " + strings.ToUpper(string(opts.Format)),
	}
}

// wrapHeader turns lines into a block comment for kind, followed by a blank
// line.
func wrapHeader(kind Kind, lines []string) string {
	start, end := "/*", " */"
	if kind == KindXML {
		start, end = "<!--", " -->"
	}

	if len(lines) == 1 && lines[0] == invalidBase {
		return fmt.Sprintf("%s %s %s\n\n", start, invalidBase, strings.TrimSpace(end))
	}

	var b strings.Builder
	b.WriteString(start + "\n")
	for _, l := range lines {
		b.WriteString(" * " + l + "\n")
	}
	b.WriteString(end + "\n\n")
	return b.String()
}

// baseDescription renders the base colour in the active model:
// hsl(200° 76% 36%) or oklch(53% 0.109 238), with "/ A" style alpha for
// OKLCH and an hsla() form for HSL when translucent.
func baseDescription(c colour.Colour, model params.Model) string {
	if !c.IsValid() {
		return invalidBase
	}
	alpha := strconv.FormatFloat(math.Round(c.Alpha()*100)/100, 'f', -1, 64)

	if model == params.ModelOKLCH {
		o := c.OKLCH()
		s := fmt.Sprintf("oklch(%d%% %.3f %d", int(math.Round(o.L)), o.C, int(colour.NormalizeHue(o.H)))
		if c.Translucent() {
			s += " / " + alpha
		}
		return s + ")"
	}

	h := c.HSL()
	hue := int(colour.NormalizeHue(h.H))
	sat := int(math.Round(h.S))
	light := int(math.Round(h.L))
	if c.Translucent() {
		return fmt.Sprintf("hsla(%d° %d%% %d%% %s)", hue, sat, light, alpha)
	}
	return fmt.Sprintf("hsl(%d° %d%% %d%%)", hue, sat, light)
}
