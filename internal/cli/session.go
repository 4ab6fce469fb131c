package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/config"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/picker"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

// colourFlags are the inputs shared by generate and derive.
type colourFlags struct {
	colour string
	model  string
	vary   string
	count  int

	hue        string
	saturation string
	lightness  string
	opacity    string

	oklchL string
	oklchC string
	oklchH string
}

var (
	hslFieldFlags   = []string{"hue", "saturation", "lightness"}
	oklchFieldFlags = []string{"oklch-l", "oklch-c", "oklch-h"}
)

func (f *colourFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.colour, "colour", "c", "", `starting colour: any CSS colour or "random"`)
	flags.StringVarP(&f.model, "model", "m", "", "colour model (hsl, oklch)")
	flags.StringVar(&f.vary, "vary", "", "parameter to sweep (hue, saturation, lightness, oklch_l, oklch_c, oklch_h, opacity)")
	flags.IntVarP(&f.count, "count", "n", 0, "number of swatches (1-100)")

	flags.StringVar(&f.hue, "hue", "", "HSL hue field, degrees")
	flags.StringVar(&f.saturation, "saturation", "", "HSL saturation field, percent")
	flags.StringVar(&f.lightness, "lightness", "", "HSL lightness field, percent")
	flags.StringVar(&f.opacity, "opacity", "", "opacity field of the active model, percent")

	flags.StringVar(&f.oklchL, "oklch-l", "", "OKLCH lightness field, percent")
	flags.StringVar(&f.oklchC, "oklch-c", "", "OKLCH chroma field, percent of the in-gamut maximum")
	flags.StringVar(&f.oklchH, "oklch-h", "", "OKLCH hue field, degrees")
}

// resolve overlays explicitly set flags on the configuration.
func (f *colourFlags) resolve(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("colour") {
		cfg.Colour = f.colour
	}

	if flags.Changed("model") {
		m, err := params.ParseModel(f.model)
		if err != nil {
			return fmt.Errorf("--model: %w", err)
		}
		cfg.Model = m
	}

	if flags.Changed("vary") {
		v, err := sweep.ParseVary(f.vary)
		if err != nil {
			return fmt.Errorf("--vary: %w", err)
		}
		if !v.AvailableFor(cfg.Model) {
			return fmt.Errorf("--vary: %w: %s cannot be varied in %s", sweep.ErrUnknownVary, v, cfg.Model)
		}
		cfg.Vary = v
	} else if !cfg.Vary.AvailableFor(cfg.Model) {
		cfg.Vary = sweep.DefaultVary(cfg.Model)
	}

	if flags.Changed("count") {
		cfg.Count = f.count
	}

	inactive := oklchFieldFlags
	if cfg.Model == params.ModelOKLCH {
		inactive = hslFieldFlags
	}
	for _, name := range inactive {
		if flags.Changed(name) {
			return fmt.Errorf("--%s does not apply to the %s model", name, cfg.Model)
		}
	}

	return nil
}

// session is a controller configured from settings and flags.
type session struct {
	cfg        config.Config
	logger     hclog.Logger
	toolbox    colour.Toolbox
	controller *picker.Controller
}

// newSession builds a controller, applies the starting colour, the sweep
// settings and any field edits for the active model, and flushes pending
// regeneration.
func newSession(cmd *cobra.Command, opts *globalOptions, f *colourFlags) (*session, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := opts.newLogger(cfg, cmd.ErrOrStderr())

	flags := cmd.Flags()
	if err := f.resolve(flags, &cfg); err != nil {
		return nil, err
	}

	tb := colour.NewToolbox()
	if cfg.Colour != picker.RandomColour {
		if c := tb.Parse(cfg.Colour); !c.IsValid() {
			return nil, fmt.Errorf("--colour: %w", c.Err())
		}
	}

	ctrl, err := picker.New(tb,
		picker.WithLogger(logger),
		picker.WithInitialColour(cfg.Colour),
		picker.WithDebounce(cfg.Debounce),
	)
	if err != nil {
		return nil, err
	}

	if err := ctrl.SetModel(cfg.Model); err != nil {
		ctrl.Close()
		return nil, err
	}
	if err := ctrl.SetVary(cfg.Vary); err != nil {
		ctrl.Close()
		return nil, err
	}
	ctrl.SetCount(cfg.Count)

	f.applyEdits(flags, ctrl, cfg.Model)
	ctrl.Flush()

	logger.Debug("session ready", "colour", ctrl.Colour().Format(colour.FormatHex), "model", cfg.Model, "vary", cfg.Vary, "count", cfg.Count)
	return &session{cfg: cfg, logger: logger, toolbox: tb, controller: ctrl}, nil
}

// applyEdits submits the field flags of the active model as one slider edit.
func (f *colourFlags) applyEdits(flags *pflag.FlagSet, ctrl *picker.Controller, model params.Model) {
	set := func(name string, dst *string, value string) bool {
		if flags.Changed(name) {
			*dst = value
			return true
		}
		return false
	}

	fields := ctrl.Snapshot().Fields
	edited := false

	if model == params.ModelOKLCH {
		in := fields.OKLCH
		edited = set("oklch-l", &in.Lightness, f.oklchL) || edited
		edited = set("oklch-c", &in.Chroma, f.oklchC) || edited
		edited = set("oklch-h", &in.Hue, f.oklchH) || edited
		edited = set("opacity", &in.Opacity, f.opacity) || edited
		if edited {
			ctrl.ApplyOKLCHEdit(in, picker.SourceSlider)
		}
		return
	}

	in := fields.HSL
	edited = set("hue", &in.Hue, f.hue) || edited
	edited = set("saturation", &in.Saturation, f.saturation) || edited
	edited = set("lightness", &in.Lightness, f.lightness) || edited
	edited = set("opacity", &in.Opacity, f.opacity) || edited
	if edited {
		ctrl.ApplyHSLEdit(in, picker.SourceSlider)
	}
}

// Close stops the controller.
func (s *session) Close() {
	s.controller.Close()
}
