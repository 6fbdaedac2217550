package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssplt/dom/style"
	"github.com/npillmayer/cssplt/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
.cssplt-view { display: none; }
@media print { .cssplt-view { display: block; } }
.cssplt-fig:has(#a:checked) .cssplt-view[data-view="k"] { display: block !important; opacity: 1; }
`)
	require.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2, "at-rules are left out")
	assert.Equal(t, ".cssplt-view", rules[0].Selector())
	r := rules[1]
	assert.Equal(t, []string{"display", "opacity"}, r.Properties())
	assert.Equal(t, style.Property("block"), r.Value("display"))
	assert.True(t, r.IsImportant("display"))
	assert.False(t, r.IsImportant("opacity"))
	assert.True(t, r.Value("color").IsEmpty())
	assert.Equal(t, style.Property("1"), r.Value("opacity"))
	var _ cssom.StyleSheet = sheet
}

func TestAddRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.cssom")
	defer teardown()
	//
	sheet := New()
	assert.True(t, sheet.Empty())
	sheet.AddRule([]string{".a", ".b"}, style.Decl("display", "none"))
	other := New()
	other.AddRule([]string{".c"}, style.Decl("display", "block", "opacity", "0.5"))
	sheet.AppendRules(other)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".a, .b", rules[0].Selector())
	text := sheet.String()
	assert.Contains(t, text, "display: none;")
	assert.Contains(t, text, "opacity: 0.5;")
	reparsed, err := Parse(text)
	require.NoError(t, err)
	assert.Len(t, reparsed.Rules(), 2)
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style>.a { display: none; }</style></head><body><p>x</p>
<style>.b { display: block; } .c { display: none; }</style></body></html>`))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules(), 1)
	assert.Len(t, sheets[1].Rules(), 2)
}
