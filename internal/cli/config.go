package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd prints the effective figure description.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective figure description",
	Long: `Print the figure description named by --config, with defaults filled in.

A figure description has the following fields:

  id          figure identifier, unique within a document (default: derived)
  title       document title; may contain inline markup
  variables   control variables, in display order:
    name        variable name
    title       title shown in front of the control
    options     single-choice options: plain values or {value, label}
    default     initially active option (default: the first)
    tags        tags of a tag group
    labels      display labels per tag
    policy      row filter of a tag group: any (default) or all
  fallback    view for states without a view of their own:
    mode        placeholder (default) or reuse
    text        placeholder text
    key         view key to reuse (default: the first view)
  theme       colours of the controls
  limits:
    max_views   refuse figures with more views (default: no limit)

Examples:
  cssplt config -c figure.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFigureConfig()
		if err != nil {
			return err
		}
		if outputFormat == formatYAML {
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		}
		return write(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
