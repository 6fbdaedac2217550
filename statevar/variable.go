package statevar

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tells single-choice variables and boolean tag groups apart.
type Kind uint8

const (
	NoKind           Kind = iota // unset
	SingleChoiceKind             // radio buttons, exactly one option active
	BooleanKind                  // independent checkboxes
)

func (k Kind) String() string {
	switch k {
	case SingleChoiceKind:
		return "single-choice"
	case BooleanKind:
		return "boolean"
	}
	return "<no kind>"
}

// Variable is a control variable descriptor. It is either a *SingleChoice or
// a *BooleanGroup; no other implementations exist.
type Variable interface {
	Name() string
	Kind() Kind
	Len() int // number of options or tags
	String() string
	isVariable()
}

// ---------------------------------------------------------------------------

// Option is a named option of a single-choice variable. Label is what the
// user sees on the control; it defaults to Value.
type Option struct {
	Value string
	Label string
}

// Options is a shortcut to create options without explicit labels.
func Options(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v}
	}
	return opts
}

// Display returns the label of an option, falling back to its value.
func (o Option) Display() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// SingleChoice is a variable with an ordered list of options, exactly one
// of which is active at any time.
type SingleChoice struct {
	name    string
	options []Option
	dflt    int
}

func (sc *SingleChoice) isVariable() {}

// Name returns the name of the variable.
func (sc *SingleChoice) Name() string { return sc.name }

// Kind returns SingleChoiceKind.
func (sc *SingleChoice) Kind() Kind { return SingleChoiceKind }

// Len returns the number of options.
func (sc *SingleChoice) Len() int { return len(sc.options) }

// Options returns a copy of the options in declaration order.
func (sc *SingleChoice) Options() []Option {
	opts := make([]Option, len(sc.options))
	copy(opts, sc.options)
	return opts
}

// Values returns the option values in declaration order.
func (sc *SingleChoice) Values() []string {
	vals := make([]string, len(sc.options))
	for i, o := range sc.options {
		vals[i] = o.Value
	}
	return vals
}

// Default returns the option active when a document is first displayed.
func (sc *SingleChoice) Default() Option {
	return sc.options[sc.dflt]
}

// IndexOf returns the position of an option value, or -1.
func (sc *SingleChoice) IndexOf(value string) int {
	for i, o := range sc.options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

func (sc *SingleChoice) String() string {
	return fmt.Sprintf("%s[%s]", sc.name, strings.Join(sc.Values(), "|"))
}

// ---------------------------------------------------------------------------

// BooleanGroup is a named set of independent boolean tags sharing a
// combination policy. All tags are unset initially.
type BooleanGroup struct {
	name   string
	tags   []string // declaration order
	sorted []string
	labels map[string]string
	policy Policy
}

func (g *BooleanGroup) isVariable() {}

// Name returns the name of the group.
func (g *BooleanGroup) Name() string { return g.name }

// Kind returns BooleanKind.
func (g *BooleanGroup) Kind() Kind { return BooleanKind }

// Len returns the number of tags.
func (g *BooleanGroup) Len() int { return len(g.tags) }

// Policy returns the combination policy fixed at registration.
func (g *BooleanGroup) Policy() Policy { return g.policy }

// Tags returns the tags in declaration order. Controls are laid out in this order.
func (g *BooleanGroup) Tags() []string {
	tags := make([]string, len(g.tags))
	copy(tags, g.tags)
	return tags
}

// SortedTags returns the tags in lexicographic order. Subsets are enumerated
// and identified with respect to this order.
func (g *BooleanGroup) SortedTags() []string {
	tags := make([]string, len(g.sorted))
	copy(tags, g.sorted)
	return tags
}

// Has reports whether tag is a member of the group.
func (g *BooleanGroup) Has(tag string) bool {
	i := sort.SearchStrings(g.sorted, tag)
	return i < len(g.sorted) && g.sorted[i] == tag
}

// Label returns the display label of a tag.
func (g *BooleanGroup) Label(tag string) string {
	if l, ok := g.labels[tag]; ok && l != "" {
		return l
	}
	return tag
}

func (g *BooleanGroup) String() string {
	return fmt.Sprintf("%s{%s}/%s", g.name, strings.Join(g.sorted, ","), g.policy)
}

var _ Variable = &SingleChoice{}
var _ Variable = &BooleanGroup{}
