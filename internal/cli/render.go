package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/cssplt"
	"github.com/npillmayer/cssplt/sanitize"
	"github.com/npillmayer/cssplt/viewkey"
	"github.com/spf13/cobra"
)

var (
	renderDir      string
	renderStub     bool
	renderOutput   string
	renderFragment bool
)

// renderCmd renders a figure into an HTML document.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a figure into an HTML document",
	Long: `Render a figure into a self-contained HTML document.

Visuals are read from a directory, one file per view key, named after the
key's slug (see 'cssplt keys'). SVG and HTML files are inlined, PNG files
are referenced. With --stub, every view shows its key instead.

Rendering fails if a visual is missing for any key.

Examples:
  cssplt render -c figure.yaml --stub -o preview.html
  cssplt render -c figure.yaml --dir charts/ -o report.html
  cssplt render -c figure.yaml --dir charts/ --fragment`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderDir, "dir", "", "Directory holding a visual per view key")
	renderCmd.Flags().BoolVar(&renderStub, "stub", false, "Render stub visuals showing the view keys")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: standard output)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "Output markup and style without a document shell")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderStub == (renderDir != "") {
		return errors.New("exactly one of --dir and --stub is required")
	}
	cfg, err := loadFigureConfig()
	if err != nil {
		return err
	}
	fig, err := cfg.Figure()
	if err != nil {
		return err
	}
	visuals := make(map[viewkey.ViewKey]cssplt.Visual, len(fig.Keys()))
	for _, k := range fig.Keys() {
		if renderStub {
			visuals[k] = cssplt.Text(k.String())
			continue
		}
		if v, ok, err := loadVisual(renderDir, k); err != nil {
			return err
		} else if ok {
			visuals[k] = v
		}
	}
	markup, style, err := fig.Render(visuals)
	if err != nil {
		return err
	}
	var out string
	if renderFragment {
		out = "<style>\n" + style + "\n</style>\n" + markup
	} else {
		out = cssplt.Document(cfg.Title, []string{markup}, []string{style})
	}
	if renderOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(renderOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", renderOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d views to %s\n", len(fig.Keys()), renderOutput)
	return nil
}

// loadVisual reads the visual for a key. A missing file is not an error
// here; Render reports all missing visuals at once.
func loadVisual(dir string, k viewkey.ViewKey) (cssplt.Visual, bool, error) {
	base := filepath.Join(dir, k.Slug())
	for _, ext := range []string{".svg", ".html"} {
		data, err := os.ReadFile(base + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return "", false, fmt.Errorf("reading visual: %w", err)
		}
		return cssplt.Visual(data), true, nil
	}
	if _, err := os.Stat(base + ".png"); err == nil {
		return cssplt.Image(filepath.ToSlash(base+".png"), sanitize.Text(k.String())), true, nil
	}
	return "", false, nil
}
