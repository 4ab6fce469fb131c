// Package cli provides the command-line interface for palettesweep.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettesweep/internal/config"
	"github.com/jmylchreest/palettesweep/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
	logJSON bool
	envFile string
}

// NewRootCmd builds the palettesweep command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "palettesweep",
		Short: "Sweep a colour through HSL or OKLCH to build a palette",
		Long: `palettesweep keeps one colour in step across the HSL and OKLCH models and
generates palettes by sweeping a single parameter (hue, saturation, lightness,
OKLCH lightness, chroma or hue, or opacity) between the colour and a maximum.

Palettes can be printed as a table, previewed in the terminal, or exported as
CSS custom properties, XML swatch lists, JSON or a tar.xz bundle of all three.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file with PALETTESWEEP_* settings")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newDeriveCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves settings from the env file and the environment.
func (o *globalOptions) loadConfig() (config.Config, error) {
	return config.NewBuilder().
		WithEnvFile(o.envFile).
		WithEnvConfig().
		Build()
}

// newLogger creates the command logger. --verbose and --quiet override the
// configured level.
func (o *globalOptions) newLogger(cfg config.Config, w io.Writer) hclog.Logger {
	level := cfg.LogLevel
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "palettesweep",
		Level:      level,
		Output:     w,
		JSONFormat: o.logJSON,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
