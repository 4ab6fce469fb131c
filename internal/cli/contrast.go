package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

func newContrastCmd(opts *globalOptions) *cobra.Command {
	var hue float64
	var against string

	cmd := &cobra.Command{
		Use:   "contrast COLOUR",
		Short: "Pick a readable text colour for a background",
		Long: `Search HSL lightness at 70% saturation for a text colour that reaches a 4:1
contrast ratio on COLOUR. The hue defaults to the background's own hue.

With --against, also report the WCAG contrast ratio between COLOUR and a
second colour.

Examples:
  palettesweep contrast "#1673a2"
  palettesweep contrast "oklch(70% 0.1 40)" --hue 220
  palettesweep contrast white --against "#777777"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := opts.newLogger(cfg, cmd.ErrOrStderr())
			tb := colour.NewToolbox()

			bg := tb.Parse(args[0])
			if !bg.IsValid() {
				return fmt.Errorf("background: %w", bg.Err())
			}

			h := bg.HSL().H
			if cmd.Flags().Changed("hue") {
				h = colour.NormalizeHue(hue)
			}
			text := colour.ContrastingText(bg, h)
			logger.Debug("contrasting text", "background", bg.Hex(), "hue", h, "text", text.Hex())

			table := NewTable([]string{"Property", "Value"})
			table.AddRow([]string{"Background", bg.Format(colour.FormatHex)})
			table.AddRow([]string{"Luminance", fmt.Sprintf("%.4f", tb.RelativeLuminance(bg))})
			table.AddRow([]string{"Text", text.Format(colour.FormatHex)})
			table.AddRow([]string{"Text contrast", fmt.Sprintf("%.2f:1", tb.ContrastRatio(text, bg))})

			if against != "" {
				other := tb.Parse(against)
				if !other.IsValid() {
					return fmt.Errorf("--against: %w", other.Err())
				}
				table.AddRow([]string{"Against", other.Format(colour.FormatHex)})
				table.AddRow([]string{"Contrast", fmt.Sprintf("%.2f:1", tb.ContrastRatio(bg, other))})
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 0, "hue of the text colour, degrees (default: background hue)")
	cmd.Flags().StringVar(&against, "against", "", "second colour to measure contrast against")
	return cmd
}
