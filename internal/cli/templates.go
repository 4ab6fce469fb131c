package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettesweep/internal/export"
	"github.com/jmylchreest/palettesweep/internal/util"
)

func newTemplatesCmd(opts *globalOptions) *cobra.Command {
	var dir string
	var force bool

	loader := func(cmd *cobra.Command) (*export.Loader, error) {
		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, err
		}
		base := cfg.TemplateDir
		if dir != "" {
			base = dir
		}
		if base, err = util.ExpandHome(base); err != nil {
			return nil, err
		}
		return export.NewLoader(base).WithLogger(opts.newLogger(cfg, cmd.ErrOrStderr())), nil
	}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage export templates",
		Long: `Manage the templates used for CSS and XML export.

Templates can be customised by dumping them to ~/.config/palettesweep/templates/
(or PALETTESWEEP_TEMPLATE_DIR) and editing them. Custom templates are used
instead of the embedded ones.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List export templates and their overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loader(cmd)
			if err != nil {
				return err
			}
			templates, err := l.ListEmbeddedTemplates()
			if err != nil {
				return err
			}

			table := NewTable([]string{"Template", "Override", "Path"})
			for _, name := range templates {
				info := l.GetInfo(name)
				override := "no"
				if info.CustomExists {
					override = "yes"
				}
				table.AddRow([]string{name, override, info.CustomPath})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the embedded templates out for editing",
		Long: `Extract the embedded templates to the custom template directory.

Examples:
  palettesweep templates dump
  palettesweep templates dump --force
  palettesweep templates dump -d ./templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loader(cmd)
			if err != nil {
				return err
			}
			dumped, err := l.DumpAllTemplates(force)
			for _, path := range dumped {
				fmt.Fprintf(cmd.OutOrStdout(), "Dumped %s\n", path)
			}
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "template directory (default: ~/.config/palettesweep/templates)")
	dumpCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}
