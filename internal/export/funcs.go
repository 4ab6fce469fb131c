package export

import (
	"strings"
	"text/template"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/util"
)

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes the five XML special characters with named entities.
func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

// templateFuncs returns the functions available to palette templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"xmlEscape": xmlEscape,

		// Format conversion.
		"hex":       func(c colour.Colour) string { return c.Format(colour.FormatHex) },
		"hexNoHash": func(c colour.Colour) string { return util.StripHash(c.Format(colour.FormatHex)) },
		"rgb":       func(c colour.Colour) string { return c.Format(colour.FormatRGB) },
		"hsl":       func(c colour.Colour) string { return c.Format(colour.FormatHSL) },
		"oklch":     func(c colour.Colour) string { return c.Format(colour.FormatOKLCH) },

		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
	}
}
