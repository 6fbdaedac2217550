package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/cssplt/verify"
	"github.com/spf13/cobra"
)

var (
	verifyMaxStates int
	verifyMaxActive int
	verifyDump      string
)

var dumpFormats = map[string]verify.DumpFormat{
	"":     verify.NoDump,
	"tree": verify.DumpTree,
	"dot":  verify.DumpDot,
}

// verifyCmd checks rendered documents.
var verifyCmd = &cobra.Command{
	Use:   "verify <file.html>...",
	Short: "Check that exactly one view is displayed for every control state",
	Long: `Check rendered documents: for every figure, toggle the controls through
their reachable states and evaluate the style rules. Exactly one view has
to be displayed for every state.

Figures with many tags have more states than can be checked. Above
--max-states, only states with at most --max-active active tags per group
are checked.

The command fails if a violation is found or if two figures share an ID.
With --dump, the elements of a figure are printed for its first violating
state, either as a tree with computed display modes or as a GraphViz
diagram.

Examples:
  cssplt verify report.html
  cssplt verify --max-states 100000 report.html
  cssplt verify --dump tree report.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyMaxStates, "max-states", verify.DefaultMaxStates, "Maximum number of states checked per figure")
	verifyCmd.Flags().IntVar(&verifyMaxActive, "max-active", verify.DefaultMaxActive, "Active tags per group for large figures")
	verifyCmd.Flags().StringVar(&verifyDump, "dump", "", "Dump the first violating state of a figure: tree or dot")
	rootCmd.AddCommand(verifyCmd)
}

type verifyOutput struct {
	File       string   `yaml:"file" json:"file"`
	Figures    int      `yaml:"figures" json:"figures"`
	States     int      `yaml:"states" json:"states"`
	Truncated  bool     `yaml:"truncated" json:"truncated"`
	Violations []string `yaml:"violations,omitempty" json:"violations,omitempty"`
	Duplicates []string `yaml:"duplicates,omitempty" json:"duplicates,omitempty"`
	Dumps      []string `yaml:"dumps,omitempty" json:"dumps,omitempty"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyMaxStates < 1 {
		return fmt.Errorf("--max-states must be at least 1, is %d", verifyMaxStates)
	}
	if verifyMaxActive < 0 {
		return fmt.Errorf("--max-active must not be negative, is %d", verifyMaxActive)
	}
	dump, ok := dumpFormats[verifyDump]
	if !ok {
		return fmt.Errorf("unknown dump format %q, expected 'tree' or 'dot'", verifyDump)
	}
	var outs []verifyOutput
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		report, err := verify.Check(string(data), "",
			verify.MaxStates(verifyMaxStates), verify.MaxActive(verifyMaxActive), verify.Dump(dump))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out := verifyOutput{
			File:       path,
			Figures:    report.Figures,
			States:     report.States,
			Truncated:  report.Truncated,
			Duplicates: report.Duplicates,
		}
		for _, v := range report.Violations {
			out.Violations = append(out.Violations, v.String())
			if v.Dump != "" {
				out.Dumps = append(out.Dumps, v.Dump)
			}
		}
		if !report.OK() {
			failed++
		}
		outs = append(outs, out)
	}
	if err := write(cmd.OutOrStdout(), outs); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed verification", failed, len(args))
	}
	return nil
}
