package cssplt

import (
	"fmt"
	"html"
	"strings"

	"github.com/npillmayer/cssplt/sanitize"
	"github.com/npillmayer/cssplt/selector"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
)

// markup writes the figure container: controls first, views after them.
// Rules test the controls with :has() on the container, so both have to be
// descendants of it.
func (fig *Figure) markup(visuals map[viewkey.ViewKey]Visual) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=%q %s=\"%s\">\n", selector.FigureClass, selector.FigureAttr, esc(fig.id))
	if fig.table.Len() > 0 {
		b.WriteString("<div class=\"cssplt-controls\">\n")
		for i, v := range fig.table.Variables() {
			fig.control(&b, i, v)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("<div class=\"cssplt-views\">\n")
	for _, key := range fig.enum.Keys() {
		fmt.Fprintf(&b, "<div class=%q %s=\"%s\">", selector.ViewClass, selector.ViewAttr, esc(key.ID()))
		b.WriteString(string(visuals[key]))
		b.WriteString("</div>\n")
	}
	if _, reuse := fig.fallback.Reused(); !reuse {
		fmt.Fprintf(&b, "<div class=\"%s %s\">", selector.ViewClass, selector.FallbackClass)
		b.WriteString(string(fig.fallback.visual))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n</div>\n")
	return b.String()
}

// control writes the inputs of one variable, each followed by its label.
// Inputs of a variable share a name, which makes radio buttons mutually
// exclusive. Names and element IDs use the variable's position, as variable
// names may contain characters not suited for them.
func (fig *Figure) control(b *strings.Builder, i int, v statevar.Variable) {
	name := fmt.Sprintf("%s-v%d", fig.id, i)
	switch x := v.(type) {
	case *statevar.SingleChoice:
		fmt.Fprintf(b, "<div class=\"cssplt-control cssplt-control--radio\" %s=\"%s\">\n",
			selector.VarKeyAttr, esc(x.Name()))
		fig.title(b, x.Name())
		dflt := x.Default().Value
		for j, o := range x.Options() {
			input(b, "radio", name, j, x.Name(), o.Value, o.Value == dflt, o.Display())
		}
	case *statevar.BooleanGroup:
		fmt.Fprintf(b, "<div class=\"cssplt-control cssplt-control--multi\" %s=\"%s\">\n",
			selector.VarKeyAttr, esc(x.Name()))
		fig.title(b, x.Name())
		for j, tag := range x.Tags() {
			input(b, "checkbox", name, j, x.Name(), tag, false, x.Label(tag))
		}
	}
	b.WriteString("</div>\n")
}

func (fig *Figure) title(b *strings.Builder, variable string) {
	if t, ok := fig.titles[variable]; ok {
		fmt.Fprintf(b, "  <span class=\"cssplt-control-title\">%s</span>\n", sanitize.HTML(t))
	}
}

// input writes an input element and its pill label. The label has to follow
// the input immediately, as the pill style uses the sibling combinator.
func input(b *strings.Builder, typ, name string, j int, variable, value string, checked bool, label string) {
	id := fmt.Sprintf("cssplt-%s-%d", name, j)
	fmt.Fprintf(b, "  <input type=%q class=\"cssplt-input cssplt-input--%s\" id=%q name=%q value=\"%s\" %s=\"%s\" %s=\"%s\"",
		typ, typ, id, name, esc(value),
		selector.VarKeyAttr, esc(variable), selector.VarValueAttr, esc(value))
	if checked {
		b.WriteString(" checked")
	}
	b.WriteString(">\n")
	fmt.Fprintf(b, "  <label class=\"cssplt-pill\" for=%q>%s</label>\n", id, sanitize.HTML(label))
}

func esc(s string) string {
	return html.EscapeString(s)
}
