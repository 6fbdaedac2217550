package cssplt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/verify"
	"github.com/npillmayer/cssplt/viewkey"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricAndTags(t *testing.T, policy statevar.Policy, tags ...string) statevar.Table {
	reg := statevar.NewRegistry()
	_, err := reg.RegisterSingleChoice("metric", []statevar.Option{
		{Value: "accuracy", Label: "<b>Accuracy</b>"},
		{Value: "latency", Label: "p95 latency"},
	})
	require.NoError(t, err)
	_, err = reg.RegisterBooleanGroup("tags", tags, policy)
	require.NoError(t, err)
	return reg.Table()
}

func stubs(fig *Figure) map[viewkey.ViewKey]Visual {
	visuals := make(map[viewkey.ViewKey]Visual)
	for _, k := range fig.Keys() {
		visuals[k] = Text("chart " + k.ID())
	}
	return visuals
}

func TestRenderPartition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	tests := []struct {
		name     string
		table    statevar.Table
		fallback func(*testing.T, statevar.Table) Fallback
		keys     int
	}{
		{"metric-and-tags", metricAndTags(t, statevar.Any, "a", "b", "c"), placeholder, 16},
		{"all-policy", metricAndTags(t, statevar.All, "x", "y"), placeholder, 8},
		{"capped-group", metricAndTags(t, statevar.Any, "t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"), placeholder, 20},
		{"reuse-fallback", metricAndTags(t, statevar.Any, "t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"), reuseFirst, 20},
		{"no-variables", statevar.NewRegistry().Table(), placeholder, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := New(tt.table, tt.fallback(t, tt.table), WithID("fig-"+tt.name))
			require.NoError(t, err)
			require.Len(t, fig.Keys(), tt.keys)
			markup, style, err := fig.Render(stubs(fig))
			require.NoError(t, err)
			report, err := verify.Check(markup, style)
			require.NoError(t, err)
			assert.Equal(t, 1, report.Figures)
			assert.False(t, report.Truncated)
			assert.True(t, report.OK(), "%v: %v", report, report.Violations)
		})
	}
}

func placeholder(*testing.T, statevar.Table) Fallback {
	return Placeholder(Text("Please select fewer tags"))
}

func reuseFirst(t *testing.T, table statevar.Table) Fallback {
	return Reuse(viewkey.Enumerate(table).Keys()[0])
}

func TestRenderMissingVisuals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	fig, err := New(metricAndTags(t, statevar.Any, "a", "b"), placeholder(t, statevar.Table{}))
	require.NoError(t, err)
	visuals := stubs(fig)
	markup, _, err := fig.Render(visuals)
	require.NoError(t, err)
	assert.NotEmpty(t, markup)
	// extra visuals are ignored
	visuals[viewkey.Make(viewkey.Coordinate{Variable: "other", Value: "x"})] = Text("extra")
	_, _, err = fig.Render(visuals)
	require.NoError(t, err)
	// missing visuals are reported, in enumeration order
	delete(visuals, fig.Keys()[3])
	delete(visuals, fig.Keys()[1])
	markup, style, err := fig.Render(visuals)
	var missing *MissingVisualError
	require.True(t, errors.As(err, &missing), "expected MissingVisualError, got %v", err)
	assert.Equal(t, []viewkey.ViewKey{fig.Keys()[1], fig.Keys()[3]}, missing.Keys)
	assert.Empty(t, markup)
	assert.Empty(t, style)
	t.Log(err)
}

func TestRenderIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	table := metricAndTags(t, statevar.Any, "c", "a", "b")
	fig1, err := New(table, placeholder(t, table))
	require.NoError(t, err)
	fig2, err := New(table, placeholder(t, table))
	require.NoError(t, err)
	assert.Equal(t, fig1.ID(), fig2.ID(), "default ID is derived from variables")
	m1, s1, err := fig1.Render(stubs(fig1))
	require.NoError(t, err)
	m2, s2, err := fig1.Render(stubs(fig1))
	require.NoError(t, err)
	m3, s3, err := fig2.Render(stubs(fig2))
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m3)
	assert.Equal(t, s1, s3)
}

func TestMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt")
	defer teardown()
	//
	table := metricAndTags(t, statevar.Any, "b", "a")
	fig, err := New(table, placeholder(t, table), WithID("m"),
		WithTitles(map[string]string{"tags": "<i>Tags</i><script>x</script>"}))
	require.NoError(t, err)
	markup, style, err := fig.Render(stubs(fig))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(markup, `<div class="cssplt-fig" data-fig="m">`), markup)
	assert.Contains(t, markup, `<input type="radio" class="cssplt-input cssplt-input--radio" id="cssplt-m-v0-0" name="m-v0" value="accuracy" data-var-key="metric" data-var-value="accuracy" checked>`)
	assert.Contains(t, markup, `<label class="cssplt-pill" for="cssplt-m-v0-0"><b>Accuracy</b></label>`)
	assert.Contains(t, markup, `<input type="checkbox" class="cssplt-input cssplt-input--checkbox" id="cssplt-m-v1-0" name="m-v1" value="b" data-var-key="tags" data-var-value="b">`)
	assert.Contains(t, markup, `<span class="cssplt-control-title"><i>Tags</i>x</span>`)
	assert.Contains(t, markup, `<div class="cssplt-view" data-view="metric=latency;tags={a,b}">`)
	assert.Contains(t, markup, `<div class="cssplt-view cssplt-view--fallback">`)
	assert.Contains(t, style, `.cssplt-fig[data-fig="m"] .cssplt-input:checked + .cssplt-pill`)
	assert.NotContains(t, markup, "<script>")
}

func TestWithoutControlStyles(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a")
	fig, err := New(table, placeholder(t, table), WithID("bare"), WithoutControlStyles())
	require.NoError(t, err)
	_, style, err := fig.Render(stubs(fig))
	require.NoError(t, err)
	assert.NotContains(t, style, "cssplt-pill")
	assert.True(t, strings.HasPrefix(style, `.cssplt-fig[data-fig="bare"] .cssplt-view {`), style)
}

func TestWithTheme(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a")
	fig, err := New(table, placeholder(t, table), WithTheme(Theme{PillBgChecked: "#ff0000"}))
	require.NoError(t, err)
	_, style, err := fig.Render(stubs(fig))
	require.NoError(t, err)
	assert.Contains(t, style, "#ff0000")
	assert.Contains(t, style, DefaultTheme().PillBg)
}

func TestNewErrors(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a")
	_, err := New(table, placeholder(t, table), WithID("1st figure"))
	var idErr *InvalidIDError
	assert.True(t, errors.As(err, &idErr), "got %v", err)
	//
	unknown := viewkey.Make(viewkey.Coordinate{Variable: "metric", Value: "recall"})
	_, err = New(table, Reuse(unknown))
	var fbErr *FallbackKeyError
	require.True(t, errors.As(err, &fbErr), "got %v", err)
	assert.Equal(t, unknown, fbErr.Key)
}

func TestReuseHasNoPlaceholder(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a", "b")
	fig, err := New(table, reuseFirst(t, table))
	require.NoError(t, err)
	markup, _, err := fig.Render(stubs(fig))
	require.NoError(t, err)
	assert.NotContains(t, markup, "cssplt-view--fallback")
}

func TestDocument(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a")
	fig, err := New(table, placeholder(t, table))
	require.NoError(t, err)
	markup, style, err := fig.Render(stubs(fig))
	require.NoError(t, err)
	doc := Document("Run <b>42</b>", []string{markup}, []string{style})
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Run 42</title>")
	assert.Contains(t, doc, "<h1>Run <b>42</b></h1>")
	report, err := verify.Check(doc, "")
	require.NoError(t, err)
	assert.True(t, report.OK(), fmt.Sprint(report.Violations))
}

func TestDocumentWithTwoFigures(t *testing.T) {
	table := metricAndTags(t, statevar.Any, "a")
	same, err := New(table, placeholder(t, table))
	require.NoError(t, err)
	other, err := New(table, placeholder(t, table), WithID("second"))
	require.NoError(t, err)
	m1, s1, err := same.Render(stubs(same))
	require.NoError(t, err)
	m2, s2, err := other.Render(stubs(other))
	require.NoError(t, err)
	report, err := verify.Check(Document("Two", []string{m1, m2}, []string{s1, s2}), "")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Figures)
	assert.True(t, report.OK(), report.String())
	// equal tables derive equal identifiers
	report, err = verify.Check(Document("Twice", []string{m1, m1}, []string{s1, s1}), "")
	require.NoError(t, err)
	assert.Equal(t, []string{same.ID()}, report.Duplicates)
	assert.False(t, report.OK())
}
