// Package export renders generated palettes as CSS custom properties, XML
// swatch lists or JSON, and packs them into tar.xz bundles.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

var (
	// ErrEmptyPalette is returned when there is nothing to export.
	ErrEmptyPalette = errors.New("no colours to export")
	// ErrUnknownFormat is returned for an unsupported export kind.
	ErrUnknownFormat = errors.New("unknown export format")
)

// Kind is an export file type.
type Kind string

const (
	KindCSS  Kind = "css"
	KindXML  Kind = "xml"
	KindJSON Kind = "json"
)

// Kinds lists every export kind.
var Kinds = []Kind{KindCSS, KindXML, KindJSON}

// ParseKind validates an export kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: css, xml, json)", ErrUnknownFormat, s)
}

// Extension returns the file extension for the kind, without a dot.
func (k Kind) Extension() string {
	return string(k)
}

// TemplateName returns the embedded template used for the kind. JSON has no
// template.
func (k Kind) TemplateName() string {
	switch k {
	case KindCSS:
		return "palette.css.tmpl"
	case KindXML:
		return "palette.xml.tmpl"
	default:
		return ""
	}
}

// Options controls how swatches are written.
type Options struct {
	// Format is the colour notation for each swatch.
	Format colour.Format
	// AlphaStyle selects 50% or 0.5 for translucent functional notations.
	AlphaStyle colour.AlphaStyle
	// Model picks the notation of the "Palette based on" header line.
	Model params.Model
}

// Entry is one swatch as seen by a template.
type Entry struct {
	Index  int
	Name   string
	Var    string
	Attr   string
	Value  string
	Colour colour.Colour
}

// TemplateData is the data passed to CSS and XML templates.
type TemplateData struct {
	Header      string
	HeaderLines []string
	Vary        string
	Count       int
	Format      string
	Entries     []Entry
}

// Exporter renders palettes through the template loader.
type Exporter struct {
	loader *Loader
	logger hclog.Logger
}

// New creates an exporter. A nil loader uses the embedded templates with the
// default override directory.
func New(loader *Loader, logger hclog.Logger) *Exporter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if loader == nil {
		loader = NewLoader("")
	}
	return &Exporter{loader: loader, logger: logger.Named("export")}
}

// Render writes p as kind.
func (e *Exporter) Render(kind Kind, p *sweep.Palette, opts Options) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = colour.FormatHex
	}

	entries := e.entries(p, opts)
	if len(entries) == 0 {
		return nil, ErrEmptyPalette
	}

	switch kind {
	case KindCSS, KindXML:
		return e.renderTemplate(kind, p, opts, entries)
	case KindJSON:
		return renderJSON(p, opts, entries)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, kind)
	}
}

func (e *Exporter) renderTemplate(kind Kind, p *sweep.Palette, opts Options, entries []Entry) ([]byte, error) {
	name := kind.TemplateName()
	content, fromCustom, err := e.loader.Load(name)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("rendering palette", "kind", kind, "template", name, "custom", fromCustom, "swatches", len(entries))

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	lines := headerLines(p, opts)
	data := TemplateData{
		Header:      wrapHeader(kind, lines),
		HeaderLines: lines,
		Vary:        p.Vary.DisplayName(),
		Count:       p.Count,
		Format:      strings.ToUpper(string(opts.Format)),
		Entries:     entries,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// entries builds the template entries, skipping swatches that cannot be
// rebuilt.
func (e *Exporter) entries(p *sweep.Palette, opts Options) []Entry {
	entries := make([]Entry, 0, p.Len())
	for i, g := range p.All() {
		c := g.Colour()
		if !c.IsValid() {
			e.logger.Warn("skipping invalid swatch", "index", i, "error", c.Err())
			continue
		}
		c = c.WithAlpha(g.Opacity, opts.AlphaStyle)
		n := len(entries) + 1
		entries = append(entries, Entry{
			Index:  n,
			Name:   fmt.Sprintf("color%03d", n),
			Var:    fmt.Sprintf("--color-%03d", n),
			Attr:   attrName(opts.Format, c.Translucent()),
			Value:  c.Format(opts.Format),
			Colour: c,
		})
	}
	return entries
}

// attrName returns the XML attribute for a swatch value: hexValue,
// hexaValue, rgbValue, rgbaValue and so on.
func attrName(f colour.Format, translucent bool) string {
	name := string(f)
	if translucent {
		name += "a"
	}
	return name + "Value"
}

type jsonSwatch struct {
	Name    string  `json:"name"`
	Value   string  `json:"value"`
	Hex     string  `json:"hex"`
	Opacity float64 `json:"opacity"`
}

type jsonExport struct {
	Base     string       `json:"base"`
	Vary     sweep.Vary   `json:"vary"`
	Count    int          `json:"count"`
	Format   string       `json:"format"`
	Swatches []jsonSwatch `json:"swatches"`
}

func renderJSON(p *sweep.Palette, opts Options, entries []Entry) ([]byte, error) {
	out := jsonExport{
		Base:     baseDescription(p.Base, opts.Model),
		Vary:     p.Vary,
		Count:    p.Count,
		Format:   string(opts.Format),
		Swatches: make([]jsonSwatch, 0, len(entries)),
	}
	for _, e := range entries {
		out.Swatches = append(out.Swatches, jsonSwatch{
			Name:    e.Name,
			Value:   e.Value,
			Hex:     e.Colour.Format(colour.FormatHex),
			Opacity: e.Colour.Alpha(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return append(data, '\n'), nil
}

// Filename returns the download name for kind at t, palette-YYMMDD-HHMM.ext.
func Filename(kind Kind, t time.Time) string {
	return fmt.Sprintf("palette-%s.%s", t.Format("060102-1504"), kind.Extension())
}
