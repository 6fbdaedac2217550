// Package cli contains all CLI commands for cssplt.
package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/cssplt/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the current version of cssplt
	Version = "0.1.0"

	// Global flags
	configPath   string
	outputFormat = formatYAML
	traceLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cssplt",
	Short: "Script-free interactive charts",
	Long: `cssplt renders charts with controls (radio buttons and tag checkboxes)
into static HTML. Every combination of control state gets its own pre-rendered
view; structural style rules display exactly one view for any control state.
No script is involved, documents work in any modern viewer.

A figure is described in a YAML file (see 'cssplt config --help').

Output Format:
  Commands output YAML by default. Use --format to switch to JSON.

Examples:
  cssplt keys -c figure.yaml               # List the views to be rendered
  cssplt keys -c figure.yaml --tree        # Same, as a tree
  cssplt render -c figure.yaml --stub      # Render with placeholder views
  cssplt render -c figure.yaml --dir out/  # Render with views from out/<slug>.svg
  cssplt verify report.html                # Check the one-view-per-state property

See 'cssplt <command> --help' for command-specific options.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "figure.yaml", "Path to the figure description")
	rootCmd.PersistentFlags().Var(&outputFormat, "format", "Output format (yaml|json)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "Trace level (error|info|debug)")
}

// setupTracing routes tracing of all packages to standard error.
func setupTracing(cmd *cobra.Command) error {
	switch traceLevel {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("invalid trace level %q, expected error, info or debug", traceLevel)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("cssplt")
	t.SetOutput(cmd.ErrOrStderr())
	t.SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	cmd.Flags().Visit(func(f *pflag.Flag) {
		t.Debugf("flag --%s = %s", f.Name, f.Value)
	})
	return nil
}

// loadFigureConfig loads the figure description named by --config.
func loadFigureConfig() (*config.FigureConfig, error) {
	cfg, err := config.LoadFromPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading figure description: %w", err)
	}
	return cfg, nil
}
