/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssplt/dom/style"
	"github.com/npillmayer/cssplt/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// New creates an empty stylesheet.
func New() *CSSStyles {
	return &CSSStyles{}
}

// Parse reads CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// AddRule appends a qualified rule with a selector list and a declaration
// block. Selectors are kept as given; they must not be empty.
func (sheet *CSSStyles) AddRule(selectors []string, decl style.Declarations) {
	r := css.NewRule(css.QualifiedRule)
	r.Selectors = make([]string, len(selectors))
	copy(r.Selectors, selectors)
	r.Prelude = strings.Join(selectors, ", ")
	for _, kv := range decl {
		r.Declarations = append(r.Declarations, &css.Declaration{
			Property: kv.Key,
			Value:    kv.Value.String(),
		})
	}
	sheet.css.Rules = append(sheet.css.Rules, r)
}

// Rules returns all the qualified rules of a stylesheet. At-rules
// (@media, @font-face, …) are not selector rules and are left out.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

// String returns the CSS text of the stylesheet, one rule after the other.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if r.Prelude == "" {
		return strings.Join(r.Selectors, ", ")
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits an HTML parse tree and searches for embedded
// <style>s, in document order. It returns the content of style-elements as
// style sheets. Style elements which fail to parse are reported as an error.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	var err error
	walk(htmldoc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Style {
			return true
		}
		var text strings.Builder
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				text.WriteString(ch.Data)
			}
		}
		c, e := parser.Parse(text.String())
		if e != nil {
			err = e
			return false
		}
		sheets = append(sheets, Wrap(c))
		return true
	})
	return sheets, err
}

// walk visits h and its descendants depth first, until f returns false.
func walk(h *html.Node, f func(*html.Node) bool) bool {
	if h == nil {
		return true
	}
	if !f(h) {
		return false
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if !walk(ch, f) {
			return false
		}
	}
	return true
}
