package selector

import (
	"fmt"

	"github.com/npillmayer/cssplt/dom/style"
	"github.com/npillmayer/cssplt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
)

// Rule is a structural-match condition paired with the visual it governs.
type Rule struct {
	Key          viewkey.ViewKey // governed view key; zero for base and fallback rules
	Fallback     bool
	When         Condition
	Target       string // selector of the governed visual, relative to the figure
	Declarations style.Declarations
}

// Selectors returns the rule's selector list in CSS notation.
func (r Rule) Selectors(scope Scope) []string {
	return r.When.selectors(scope, r.Target)
}

func (r Rule) String() string {
	if r.Fallback {
		return fmt.Sprintf("fallback → %s", r.Target)
	}
	return fmt.Sprintf("%v → %s", r.Key, r.Target)
}

var (
	hidden  = style.Decl("display", "none")
	visible = style.Decl("display", "block")
)

// RuleSet is the complete rule set for one figure: a base rule hiding every
// view, one rule per view key and exactly one fallback rule.
type RuleSet struct {
	Scope    Scope
	Base     Rule
	Keys     []Rule // in enumeration order
	Fallback Rule
	index    map[viewkey.ViewKey]int
}

// Synthesize compiles an enumeration into rules. fallback is the target
// selector of the visual shown for uncovered control states, usually
// ViewTarget of a covered key or PlaceholderTarget.
//
// Synthesize is deterministic: equal enumerations, scopes and targets result
// in equal rule sets.
func Synthesize(enum *viewkey.Enumeration, scope Scope, fallback string) *RuleSet {
	rs := &RuleSet{
		Scope: scope,
		Base: Rule{
			When:         Condition{Term{}},
			Target:       "." + ViewClass,
			Declarations: hidden,
		},
		index: make(map[viewkey.ViewKey]int, enum.Len()),
	}
	dims := enum.Dimensions()
	for _, key := range enum.Keys() {
		rs.index[key] = len(rs.Keys)
		rs.Keys = append(rs.Keys, Rule{
			Key:          key,
			When:         Condition{keyTerm(key, dims)},
			Target:       ViewTarget(key.ID()),
			Declarations: visible,
		})
	}
	rs.Fallback = Rule{
		Fallback:     true,
		When:         uncovered(dims),
		Target:       fallback,
		Declarations: visible,
	}
	tracer().Debugf("synthesized %d key rules, fallback has %d terms", len(rs.Keys), len(rs.Fallback.When))
	return rs
}

// keyTerm is true exactly when the live state equals the key: the selected
// option is active for every single-choice variable, and for every tag group
// each tag of the key's subset is active while every other tag is not.
func keyTerm(key viewkey.ViewKey, dims []viewkey.Dimension) Term {
	var t Term
	coords := key.Coordinates()
	for i, d := range dims {
		c := coords[i]
		switch v := d.Variable.(type) {
		case *statevar.SingleChoice:
			t = append(t, Literal{Var: v.Name(), Value: c.Value, Radio: true, Checked: true})
		case *statevar.BooleanGroup:
			in := make(map[string]bool, len(c.Tags))
			for _, tag := range c.Tags {
				in[tag] = true
			}
			for _, tag := range v.SortedTags() {
				t = append(t, Literal{Var: v.Name(), Value: tag, Checked: in[tag]})
			}
		}
	}
	return t
}

// uncovered is true exactly when no key term holds. Coverage is a product of
// per-variable coverage, so a state is uncovered iff at least one variable
// is in a state its domain does not cover:
//
//   - single-choice: no option is active;
//   - tag group enumerated with singletons: at least two tags are active;
//   - tag group enumerated as a power set: never.
func uncovered(dims []viewkey.Dimension) Condition {
	var c Condition
	for _, d := range dims {
		switch v := d.Variable.(type) {
		case *statevar.SingleChoice:
			var t Term
			for _, val := range v.Values() {
				t = append(t, Literal{Var: v.Name(), Value: val, Radio: true, Checked: false})
			}
			c = append(c, t)
		case *statevar.BooleanGroup:
			if d.Strategy != viewkey.Singletons {
				continue
			}
			tags := v.SortedTags()
			for i := 0; i < len(tags); i++ {
				for j := i + 1; j < len(tags); j++ {
					c = append(c, Term{
						{Var: v.Name(), Value: tags[i], Checked: true},
						{Var: v.Name(), Value: tags[j], Checked: true},
					})
				}
			}
		}
	}
	return c
}

// Rules returns all rules in cascade order: base, keys, fallback.
func (rs *RuleSet) Rules() []Rule {
	rules := make([]Rule, 0, len(rs.Keys)+2)
	rules = append(rules, rs.Base)
	rules = append(rules, rs.Keys...)
	return append(rules, rs.Fallback)
}

// Lookup returns the rule governing a view key.
func (rs *RuleSet) Lookup(key viewkey.ViewKey) (Rule, bool) {
	i, ok := rs.index[key]
	if !ok {
		return Rule{}, false
	}
	return rs.Keys[i], true
}

// Matching returns the key and fallback rules whose condition holds for a
// live state. For every state the result has exactly one element.
func (rs *RuleSet) Matching(s State) []Rule {
	var m []Rule
	for _, r := range rs.Keys {
		if r.When.Holds(s) {
			m = append(m, r)
		}
	}
	if rs.Fallback.When.Holds(s) {
		m = append(m, rs.Fallback)
	}
	return m
}

// Stylesheet returns the rules as a stylesheet.
func (rs *RuleSet) Stylesheet() *douceuradapter.CSSStyles {
	sheet := douceuradapter.New()
	for _, r := range rs.Rules() {
		sheet.AddRule(r.Selectors(rs.Scope), r.Declarations)
	}
	return sheet
}

// String returns the rules in CSS notation.
func (rs *RuleSet) String() string {
	return rs.Stylesheet().String()
}
