package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cssplt"
	"github.com/npillmayer/cssplt/verify"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const figureYAML = `
id: runs
title: Test runs
variables:
  - name: metric
    options: [accuracy, latency]
  - name: tags
    tags: [gpu, cpu]
`

func setup(t *testing.T) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "figure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(figureYAML), 0644))
	return path
}

// run executes the root command with fresh flag values.
func run(t *testing.T, args ...string) (string, error) {
	keysTree = false
	renderDir, renderStub, renderOutput, renderFragment = "", false, "", false
	outputFormat, traceLevel = formatYAML, "error"
	verifyMaxStates, verifyMaxActive, verifyDump = verify.DefaultMaxStates, verify.DefaultMaxActive, ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	path := setup(t)
	out, err := run(t, "keys", "-c", path, "--format", "json")
	require.NoError(t, err)
	var keys keysOutput
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, "runs", keys.Figure)
	assert.Equal(t, 8, keys.Views)
	assert.False(t, keys.Capped)
	assert.Equal(t, "metric=accuracy;tags={}", keys.Keys[0].ID)
	//
	out, err = run(t, "keys", "-c", path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &keys))
	assert.Equal(t, 8, keys.Views)
	//
	out, err = run(t, "keys", "-c", path, "--tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "8 view keys"), out)
}

func TestRenderAndVerify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	path := setup(t)
	doc := filepath.Join(filepath.Dir(path), "out.html")
	_, err := run(t, "render", "-c", path, "--stub", "-o", doc)
	require.NoError(t, err)
	html, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Test runs</title>")
	//
	out, err := run(t, "verify", doc)
	require.NoError(t, err)
	var reports []verifyOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Figures)
	assert.Equal(t, 8, reports[0].States)
	assert.Empty(t, reports[0].Violations)
}

func TestVerifyFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	dir := t.TempDir()
	doc := filepath.Join(dir, "broken.html")
	broken := `<div class="cssplt-fig" data-fig="x">
<div class="cssplt-view" data-view="a">A</div><div class="cssplt-view" data-view="b">B</div></div>`
	require.NoError(t, os.WriteFile(doc, []byte(broken), 0644))
	out, err := run(t, "verify", doc, "--dump", "tree")
	assert.Error(t, err)
	var reports []verifyOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Dumps, 1)
	assert.Contains(t, reports[0].Dumps[0], `data-view="a" [block]`)
	//
	_, err = run(t, "verify", doc, "--dump", "svg")
	assert.Error(t, err)
	_, err = run(t, "verify", doc, "--max-states", "0")
	assert.ErrorContains(t, err, "--max-states")
}

func TestVerifyDuplicateFigures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	path := setup(t)
	doc := filepath.Join(filepath.Dir(path), "frag.html")
	_, err := run(t, "render", "-c", path, "--stub", "--fragment", "-o", doc)
	require.NoError(t, err)
	frag, err := os.ReadFile(doc)
	require.NoError(t, err)
	twice := filepath.Join(filepath.Dir(path), "twice.html")
	require.NoError(t, os.WriteFile(twice, append(frag, frag...), 0644))
	out, err := run(t, "verify", twice)
	assert.Error(t, err)
	var reports []verifyOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"runs"}, reports[0].Duplicates)
	assert.Empty(t, reports[0].Violations)
}

func TestRenderFromDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	path := setup(t)
	visuals := filepath.Join(filepath.Dir(path), "charts")
	require.NoError(t, os.Mkdir(visuals, 0755))
	out, err := run(t, "keys", "-c", path, "--format", "json")
	require.NoError(t, err)
	var keys keysOutput
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	for _, k := range keys.Keys[1:] {
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><text>` + k.ID + `</text></svg>`
		require.NoError(t, os.WriteFile(filepath.Join(visuals, k.Slug+".svg"), []byte(svg), 0644))
	}
	_, err = run(t, "render", "-c", path, "--dir", visuals)
	var missing *cssplt.MissingVisualError
	require.True(t, errors.As(err, &missing), "got %v", err)
	require.Len(t, missing.Keys, 1)
	assert.Equal(t, keys.Keys[0].ID, missing.Keys[0].ID())
	//
	first := filepath.Join(visuals, keys.Keys[0].Slug+".html")
	require.NoError(t, os.WriteFile(first, []byte("<p>all runs</p>"), 0644))
	out, err = run(t, "render", "-c", path, "--dir", visuals, "--fragment")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<style>"))
	assert.Contains(t, out, "<p>all runs</p>")
	assert.Contains(t, out, "<text>metric=latency;tags={cpu,gpu}</text>")
}

func TestFlags(t *testing.T) {
	path := setup(t)
	_, err := run(t, "keys", "-c", path, "--format", "xml")
	assert.Error(t, err)
	_, err = run(t, "keys", "-c", path, "--trace", "verbose")
	assert.Error(t, err)
	_, err = run(t, "render", "-c", path)
	assert.Error(t, err, "one of --dir and --stub is required")
}
