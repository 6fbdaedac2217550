package cli

import (
	"fmt"

	"github.com/npillmayer/cssplt/dom/domdbg"
	"github.com/spf13/cobra"
)

var keysTree bool

// keysCmd lists the view keys of a figure.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the views of a figure",
	Long: `List the view keys of a figure, in enumeration order.

Every key needs its own pre-rendered visual. The slug of a key is a file
name safe form of its identifier; 'cssplt render --dir' looks for visuals
named <slug>.svg or <slug>.html.

Tag groups with more than 8 tags are not enumerated as a power set. They
contribute the empty subset and one subset per tag; combinations of two or
more active tags display the fallback. Such groups are reported as warnings.

Examples:
  cssplt keys -c figure.yaml
  cssplt keys -c figure.yaml --tree
  cssplt keys -c figure.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&keysTree, "tree", false, "Print variables and keys as a tree")
	rootCmd.AddCommand(keysCmd)
}

type keysOutput struct {
	Figure   string      `yaml:"figure" json:"figure"`
	Views    int         `yaml:"views" json:"views"`
	Capped   bool        `yaml:"capped" json:"capped"`
	Warnings []string    `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Keys     []keyOutput `yaml:"keys" json:"keys"`
}

type keyOutput struct {
	ID   string `yaml:"id" json:"id"`
	Slug string `yaml:"slug" json:"slug"`
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, err := loadFigureConfig()
	if err != nil {
		return err
	}
	fig, err := cfg.Figure()
	if err != nil {
		return err
	}
	if keysTree {
		fmt.Fprint(cmd.OutOrStdout(), domdbg.Keys(fig.Enumeration()).String())
		return nil
	}
	out := keysOutput{
		Figure: fig.ID(),
		Views:  len(fig.Keys()),
		Capped: fig.Enumeration().Capped(),
	}
	for _, w := range fig.Warnings() {
		out.Warnings = append(out.Warnings, w.Error())
	}
	for _, k := range fig.Keys() {
		out.Keys = append(out.Keys, keyOutput{ID: k.ID(), Slug: k.Slug()})
	}
	return write(cmd.OutOrStdout(), out)
}
