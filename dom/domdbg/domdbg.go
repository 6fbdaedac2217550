/*
Package domdbg implements helpers to debug rendered figures.

Figures may be dumped as trees to the console (with the computed display
mode of every element, if rules are given) or drawn as GraphViz diagrams.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cssplt/dom/style/css"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// shownAttrs are the attributes printed for element nodes.
var shownAttrs = []string{"class", "type", "data-fig", "data-view", "data-var-key", "data-var-value", "checked"}

// Tree returns a tree of the elements under h. If rules are given, every
// element is annotated with its computed display property, and elements which
// are not rendered are marked with ✕. Text is left out.
func Tree(h *html.Node, rules []css.CompiledRule) tp.Tree {
	root := tp.NewWithRoot(describe(h, rules))
	addChildren(root, h, rules)
	return root
}

func addChildren(t tp.Tree, h *html.Node, rules []css.CompiledRule) {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		if ch.FirstChild == nil {
			t.AddNode(describe(ch, rules))
			continue
		}
		addChildren(t.AddBranch(describe(ch, rules)), ch, rules)
	}
}

func describe(h *html.Node, rules []css.CompiledRule) string {
	if h.Type == html.DocumentNode {
		return "#document"
	}
	var b strings.Builder
	b.WriteString(h.Data)
	for _, key := range shownAttrs {
		for _, a := range h.Attr {
			if a.Key != key {
				continue
			}
			if a.Val == "" {
				fmt.Fprintf(&b, " %s", a.Key)
			} else {
				fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
			}
		}
	}
	if rules != nil && h.Type == html.ElementNode {
		fmt.Fprintf(&b, " [%v]", css.GetProperty(h, rules, "display"))
		if !css.IsRendered(h, rules) {
			b.WriteString(" ✕")
		}
	}
	return b.String()
}

// Keys returns a tree of the enumerated domain of every variable, followed
// by the view keys.
func Keys(enum *viewkey.Enumeration) tp.Tree {
	root := tp.NewWithRoot(fmt.Sprintf("%d view keys", enum.Len()))
	vars := root.AddBranch("variables")
	for _, d := range enum.Dimensions() {
		var br tp.Tree
		if g, ok := d.Variable.(*statevar.BooleanGroup); ok {
			br = vars.AddMetaBranch(d.Strategy, fmt.Sprintf("%s (%v)", d.Variable.Name(), g.Policy()))
		} else {
			br = vars.AddBranch(d.Variable.Name())
		}
		for _, c := range d.Values {
			br.AddNode(c.String())
		}
	}
	keys := root.AddBranch("keys")
	for _, k := range enum.Keys() {
		keys.AddMetaNode(k.Slug(), k.String())
	}
	return root
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name   string
	Label  string
	Hidden bool
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for the elements under h. The diagram is in
// GraphViz (DOT) format. If rules are given, elements which are not rendered
// are drawn greyed out.
func ToGraphViz(h *html.Node, rules []css.CompiledRule, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(h, rules, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(h *html.Node, rules []css.CompiledRule, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) error {
	//
	name := nodeName(h, dict)
	n := node{Name: name, Label: fmt.Sprintf("%q", describe(h, nil))}
	if rules != nil && h.Type == html.ElementNode {
		n.Hidden = !css.IsRendered(h, rules)
	}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		if err := nodes(ch, rules, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, nodeName(ch, dict)}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(h *html.Node, dict map[*html.Node]string) string {
	name := dict[h]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[h] = name
	}
	return name
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Hidden }}
{{ .Name }}	[ label={{ .Label }} shape=box style="filled,dashed" fillcolor=grey90 fontcolor=grey50 ] ;
{{ else }}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
