package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/export"
	"github.com/jmylchreest/palettesweep/internal/sweep"
	"github.com/jmylchreest/palettesweep/internal/util"
)

// exportTable prints the palette as a table instead of an export file.
const exportTable = "table"

type generateOptions struct {
	colourFlags

	format       string
	export       string
	output       string
	bundle       string
	alphaPercent bool
	preview      bool

	now func() time.Time
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	g := &generateOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette by sweeping one colour parameter",
		Long: `Generate a palette by sweeping one parameter of a colour from its current
value to the parameter's maximum.

Settings are read from .env and PALETTESWEEP_* environment variables; flags
override them. Field flags (--hue, --oklch-c, ...) are applied as edits of the
active model's panel after the starting colour is set, so they behave the way
the picker does: an achromatic colour keeps its remembered hue, and OKLCH
chroma is a percentage of the in-gamut maximum.

Examples:
  # Six lightness steps from the default colour
  palettesweep generate

  # Hue sweep in OKLCH, exported as CSS custom properties
  palettesweep generate -c "#1673a2" -m oklch --vary oklch_h -n 8 --export css

  # Opacity steps written as XML into a directory (timestamped file name)
  palettesweep generate --vary opacity --export xml -o ./palettes

  # Every export format in one archive
  palettesweep generate --bundle palette.tar.xz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, g)
		},
	}

	g.register(cmd.Flags())
	cmd.Flags().StringVarP(&g.format, "format", "f", "", "colour notation (hex, rgb, hsl, oklch)")
	cmd.Flags().StringVarP(&g.export, "export", "e", exportTable, "output kind (table, css, xml, json)")
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "write to file or directory instead of stdout")
	cmd.Flags().StringVar(&g.bundle, "bundle", "", "also write a tar.xz bundle of all export formats")
	cmd.Flags().BoolVar(&g.alphaPercent, "alpha-percent", false, "write alpha as a percentage")
	cmd.Flags().BoolVarP(&g.preview, "preview", "p", false, "show a colour preview")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, g *generateOptions) error {
	s, err := newSession(cmd, opts, &g.colourFlags)
	if err != nil {
		return err
	}
	defer s.Close()

	format := s.cfg.Format
	if cmd.Flags().Changed("format") {
		if format, err = colour.ParseFormat(g.format); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	alphaStyle := colour.AlphaNumber
	if g.alphaPercent || strings.Contains(g.opacity, "%") {
		alphaStyle = colour.AlphaPercent
	}

	palette := s.controller.Palette()
	snap := s.controller.Snapshot()
	out := cmd.OutOrStdout()
	now := g.now()

	exportOpts := export.Options{Format: format, AlphaStyle: alphaStyle, Model: snap.Fields.Model}

	templateDir, err := util.ExpandHome(s.cfg.TemplateDir)
	if err != nil {
		return err
	}
	exporter := export.New(export.NewLoader(templateDir).WithLogger(s.logger), s.logger)

	if g.preview {
		fmt.Fprint(out, renderPreview(palette, format, alphaStyle, terminalWidth(out)))
	}

	var data []byte
	ext := "txt"
	if strings.EqualFold(g.export, exportTable) {
		data = []byte(renderPaletteTable(palette, format, alphaStyle))
	} else {
		kind, err := export.ParseKind(g.export)
		if err != nil {
			return fmt.Errorf("--export: %w", err)
		}
		if data, err = exporter.Render(kind, palette, exportOpts); err != nil {
			return err
		}
		ext = kind.Extension()
	}

	if g.output == "" || g.output == "-" {
		if _, err := out.Write(data); err != nil {
			return err
		}
	} else {
		path, err := outputPath(g.output, fmt.Sprintf("palette-%s.%s", now.Format("060102-1504"), ext))
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		s.logger.Info("wrote palette", "path", path, "swatches", palette.Len())
	}

	if g.bundle != "" {
		path, err := outputPath(g.bundle, fmt.Sprintf("palette-%s.tar.xz", now.Format("060102-1504")))
		if err != nil {
			return err
		}
		if err := writeBundle(exporter, path, palette, exportOpts, now); err != nil {
			return err
		}
		s.logger.Info("wrote bundle", "path", path)
	}

	return nil
}

// outputPath expands ~ and, when path is an existing directory, places
// defaultName inside it.
func outputPath(path, defaultName string) (string, error) {
	path, err := util.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, defaultName), nil
	}
	return path, nil
}

func writeBundle(e *export.Exporter, path string, p *sweep.Palette, opts export.Options, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return e.WriteBundle(f, p, opts, now)
}

// renderPaletteTable lists each swatch in the chosen notation alongside its
// hex, HSL and OKLCH forms.
func renderPaletteTable(p *sweep.Palette, format colour.Format, style colour.AlphaStyle) string {
	table := NewTable([]string{"#", "Value", "Hex", "HSL", "OKLCH", "Opacity"})
	table.SetAlignRight(0)
	table.SetAlignRight(5)

	for i, g := range p.All() {
		c := g.Colour().WithAlpha(g.Opacity, style)
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			c.Format(format),
			c.Format(colour.FormatHex),
			c.Opaque().HSLString(),
			c.Opaque().OKLCHString(),
			fmt.Sprintf("%d%%", int(g.Opacity*100+0.5)),
		})
	}

	header := fmt.Sprintf("Varying %s, %d swatches\n\n", p.Vary.DisplayName(), p.Len())
	return header + table.Render()
}

