package css_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssplt/dom/style/css"
	"github.com/npillmayer/cssplt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const fixture = `<div id="fig">
<input type="checkbox" id="c" checked>
<div id="v1" class="view">A</div>
<div id="v2" class="view"><span id="s">B</span></div>
</div>`

func compile(t *testing.T, text string) []css.CompiledRule {
	sheet, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	rules, err := css.Compile(sheet)
	require.NoError(t, err)
	return rules
}

func parse(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	return doc
}

func find(doc *html.Node, id string) *html.Node {
	return cascadia.MustCompile("#" + id).MatchFirst(doc)
}

func TestCascadeHas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.css")
	defer teardown()
	//
	doc := parse(t)
	rules := compile(t, `
.view { display: none; }
#fig:has(#c:checked) #v1 { display: block; }
#fig:not(:has(#c:checked)) #v2 { display: block; }
`)
	require.Len(t, rules, 3)
	v1, v2, s := find(doc, "v1"), find(doc, "v2"), find(doc, "s")
	assert.True(t, css.IsRendered(v1, rules))
	assert.False(t, css.IsRendered(v2, rules))
	assert.False(t, css.IsRendered(s, rules), "hidden by its parent")
	assert.Equal(t, "inline", css.GetProperty(s, rules, "display").String())
	//
	c := find(doc, "c")
	c.Attr = c.Attr[:len(c.Attr)-1] // drop "checked"
	assert.False(t, css.IsRendered(v1, rules))
	assert.True(t, css.IsRendered(v2, rules))
	assert.True(t, css.IsRendered(s, rules))
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.css")
	defer teardown()
	//
	doc := parse(t)
	v1 := find(doc, "v1")
	rules := compile(t, `
.view { opacity: 0.5; }
.view { opacity: 0.7; }
div { opacity: 0.1; }
`)
	assert.Equal(t, "0.7", css.GetLocalProperty(v1, rules, "opacity").String(), "source order")
	rules = compile(t, `
.view { display: none !important; }
#v1 { display: block; }
`)
	assert.Equal(t, "none", css.GetLocalProperty(v1, rules, "display").String(), "importance")
	rules = compile(t, `p::before { display: none; }`)
	assert.Empty(t, rules, "pseudo-element rules")
	_, err := css.Compile(mustParse(t, `#a:hover-ish { display: none; }`))
	assert.Error(t, err)
}

func TestCascadeInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.css")
	defer teardown()
	//
	doc := parse(t)
	rules := compile(t, `#fig { visibility: hidden; opacity: 0.5; }`)
	s := find(doc, "s")
	assert.Equal(t, "hidden", css.GetProperty(s, rules, "visibility").String())
	assert.Equal(t, "1", css.GetProperty(s, rules, "opacity").String())
}

func TestParseDisplay(t *testing.T) {
	mode, err := css.ParseDisplay(" inline-flex ")
	require.NoError(t, err)
	assert.True(t, mode.Contains(css.InlineMode))
	assert.True(t, mode.Contains(css.FlexMode))
	assert.False(t, mode.IsHidden())
	mode, err = css.ParseDisplay("none")
	require.NoError(t, err)
	assert.True(t, mode.IsHidden())
	mode, err = css.ParseDisplay("")
	require.NoError(t, err)
	assert.Equal(t, css.NoMode, mode)
	mode, err = css.ParseDisplay("ruby")
	assert.Error(t, err)
	assert.True(t, mode.IsBlockLevel())
	assert.Equal(t, "BlockMode InnerBlockMode", (css.BlockMode | css.InnerBlockMode).FullString())
}

func mustParse(t *testing.T, text string) *douceuradapter.CSSStyles {
	sheet, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	return sheet
}
