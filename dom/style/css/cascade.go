package css

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssplt/dom/style"
	"github.com/npillmayer/cssplt/dom/style/cssom"
	"golang.org/x/net/html"
)

// CompiledRule is a stylesheet rule with its selector list compiled.
type CompiledRule struct {
	Rule      cssom.Rule
	Selectors cascadia.SelectorGroup
	Order     int // position in source order
}

// Compile compiles the selectors of all rules of one or more stylesheets.
// Rules are numbered in source order across stylesheets. Rules carrying
// pseudo-elements are skipped, as they never style a node itself.
func Compile(sheets ...cssom.StyleSheet) ([]CompiledRule, error) {
	var compiled []CompiledRule
	order := 0
	for _, sheet := range sheets {
		for _, r := range sheet.Rules() {
			prelude := strings.TrimSpace(r.Selector())
			group, err := cascadia.ParseGroupWithPseudoElements(prelude)
			if err != nil {
				return nil, fmt.Errorf("cannot compile selector %q: %w", prelude, err)
			}
			sels := group[:0]
			for _, s := range group {
				if s.PseudoElement() == "" {
					sels = append(sels, s)
				}
			}
			if len(sels) > 0 {
				compiled = append(compiled, CompiledRule{Rule: r, Selectors: sels, Order: order})
			}
			order++
		}
	}
	tracer().Debugf("compiled %d rules", len(compiled))
	return compiled, nil
}

// Match returns true and the specificity of the most specific matching
// selector if the rule applies to node.
func (cr CompiledRule) Match(node *html.Node) (bool, cascadia.Specificity) {
	var best cascadia.Specificity
	matched := false
	for _, s := range cr.Selectors {
		if s.Match(node) {
			sp := s.Specificity()
			if !matched || best.Less(sp) {
				best = sp
			}
			matched = true
		}
	}
	return matched, best
}

// GetLocalProperty returns the cascaded value of a style property for
// a node, as declared by the rules. No inheritance and no user-agent defaults
// are considered; NullStyle is returned if no rule declares the property.
//
// The winning declaration is decided by importance, then by specificity,
// then by source order.
func GetLocalProperty(node *html.Node, rules []CompiledRule, key string) style.Property {
	p := style.NullStyle
	var bestSpec cascadia.Specificity
	bestImportant, found := false, false
	for _, cr := range rules {
		v := cr.Rule.Value(key)
		if v.IsEmpty() {
			continue
		}
		ok, sp := cr.Match(node)
		if !ok {
			continue
		}
		imp := cr.Rule.IsImportant(key)
		if found {
			if bestImportant && !imp {
				continue
			}
			if bestImportant == imp && sp.Less(bestSpec) {
				continue
			}
		}
		p, bestSpec, bestImportant, found = v, sp, imp, true
	}
	return p
}

// GetProperty gets the value of a property. If the property is not set
// for the node and the property is inheritable, the search cascades to
// the parent nodes. Otherwise the user-agent default is returned.
func GetProperty(node *html.Node, rules []CompiledRule, key string) style.Property {
	for n := node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		p := GetLocalProperty(n, rules, key)
		if !p.IsEmpty() && !p.IsInherit() {
			return p
		}
		if !style.IsCascading(key) && !p.IsInherit() {
			break
		}
	}
	return style.GetUserAgentDefaultProperty(node, key)
}

// Display returns the computed display mode of a node.
func Display(node *html.Node, rules []CompiledRule) (DisplayMode, error) {
	p := GetProperty(node, rules, "display")
	return ParseDisplay(p.String())
}

// IsRendered returns false if the node or one of its ancestors has display
// mode none, i.e., the node does not generate a box.
func IsRendered(node *html.Node, rules []CompiledRule) bool {
	for n := node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		mode, err := Display(n, rules)
		if err != nil {
			tracer().Debugf("%v", err)
		}
		if mode.IsHidden() {
			return false
		}
	}
	return true
}
