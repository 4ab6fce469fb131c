package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/picker"
)

// deriveReport is the JSON form of derive's output.
type deriveReport struct {
	Model     params.Model       `json:"model"`
	Colour    string             `json:"colour"`
	HSL       string             `json:"hsl"`
	OKLCH     string             `json:"oklch"`
	Fields    params.Inputs      `json:"fields"`
	Derived   params.Derived     `json:"derived"`
	HueMemory map[string]float64 `json:"hue_memory"`
	Vary      string             `json:"vary"`
	Count     int                `json:"count"`
}

func newDeriveCmd(opts *globalOptions) *cobra.Command {
	f := &colourFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Show the synchronised HSL and OKLCH parameters of a colour",
		Long: `Apply a colour and optional field edits, then print what both panels show,
the parameters the sweep would start from and the remembered hues.

Examples:
  palettesweep derive -c "hsl(200, 0%, 50%)"
  palettesweep derive -m oklch --oklch-c 50 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, f)
			if err != nil {
				return err
			}
			defer s.Close()

			report := buildDeriveReport(s.controller.Snapshot())
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal report: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			_, err = fmt.Fprint(out, renderDeriveTable(report))
			return err
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func buildDeriveReport(snap picker.Snapshot) deriveReport {
	return deriveReport{
		Model:   snap.Fields.Model,
		Colour:  snap.Colour.Format(colour.FormatHex),
		HSL:     snap.Colour.Format(colour.FormatHSL),
		OKLCH:   snap.Colour.Format(colour.FormatOKLCH),
		Fields:  snap.Fields,
		Derived: snap.Derived,
		HueMemory: map[string]float64{
			params.ModelHSL.String():   snap.Memory.HSL(),
			params.ModelOKLCH.String(): snap.Memory.OKLCH(),
		},
		Vary:  snap.Vary.String(),
		Count: snap.Count,
	}
}

func renderDeriveTable(r deriveReport) string {
	d := r.Derived
	table := NewTable([]string{"Property", "Value"})
	rows := [][]string{
		{"Model", r.Model.String()},
		{"Colour", r.Colour},
		{"HSL", r.HSL},
		{"OKLCH", r.OKLCH},
		{"HSL fields", fmt.Sprintf("H %s  S %s  L %s  A %s", r.Fields.HSL.Hue, r.Fields.HSL.Saturation, r.Fields.HSL.Lightness, r.Fields.HSL.Opacity)},
		{"OKLCH fields", fmt.Sprintf("L %s  C %s%%  H %s  A %s", r.Fields.OKLCH.Lightness, r.Fields.OKLCH.Chroma, r.Fields.OKLCH.Hue, r.Fields.OKLCH.Opacity)},
		{"Derived HSL", fmt.Sprintf("%d° %d%% %d%%", d.HSL.H, d.HSL.S, d.HSL.L)},
		{"Derived OKLCH", fmt.Sprintf("%d%% %d%% (%s) %d°", d.OKLCH.L, d.OKLCH.CPercent, strconv.FormatFloat(d.OKLCH.CAbs, 'f', 4, 64), d.OKLCH.H)},
		{"Opacity", strconv.FormatFloat(d.Opacity, 'f', -1, 64)},
		{"Effective HSL hue", strconv.Itoa(d.EffectiveHSLHue)},
		{"Hue memory", fmt.Sprintf("hsl %g  oklch %g", r.HueMemory["hsl"], r.HueMemory["oklch"])},
		{"Sweep", fmt.Sprintf("%s x %d", r.Vary, r.Count)},
	}
	for _, row := range rows {
		table.AddRow(row)
	}
	return table.Render()
}
