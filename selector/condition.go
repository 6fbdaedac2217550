package selector

import (
	"strings"
)

// Class names and attributes shared between markup and rules.
const (
	FigureClass   = "cssplt-fig"
	ViewClass     = "cssplt-view"
	FallbackClass = "cssplt-view--fallback"
	FigureAttr    = "data-fig"
	ViewAttr      = "data-view"
	VarKeyAttr    = "data-var-key"
	VarValueAttr  = "data-var-value"
)

// Literal is an atomic condition on live control state: the input for
// Value of variable Var is checked (or not).
type Literal struct {
	Var     string
	Value   string
	Radio   bool // radio input of a single-choice variable, else checkbox of a tag group
	Checked bool
}

// Term is a conjunction of literals. The empty term is always true.
type Term []Literal

// Condition is a disjunction of terms. The empty condition is never true.
type Condition []Term

// State is a live control state: for every variable the values whose inputs
// are checked. A single-choice variable has at most one of them.
type State map[string][]string

// Has reports whether the input for value of variable v is checked.
func (s State) Has(v, value string) bool {
	for _, x := range s[v] {
		if x == value {
			return true
		}
	}
	return false
}

// Holds evaluates a literal against a live state.
func (l Literal) Holds(s State) bool {
	return s.Has(l.Var, l.Value) == l.Checked
}

// Holds evaluates a term against a live state.
func (t Term) Holds(s State) bool {
	for _, l := range t {
		if !l.Holds(s) {
			return false
		}
	}
	return true
}

// Holds evaluates a condition against a live state.
func (c Condition) Holds(s State) bool {
	for _, t := range c {
		if t.Holds(s) {
			return true
		}
	}
	return false
}

// --- CSS notation -----------------------------------------------------

// Scope is the figure container the rules of one chart are confined to.
type Scope struct {
	FigureID string
}

// Selector returns the compound selector of the figure container.
func (sc Scope) Selector() string {
	return "." + FigureClass + attr(FigureAttr, sc.FigureID)
}

// input returns the selector of the input element a literal refers to.
func (l Literal) input() string {
	typ := "checkbox"
	if l.Radio {
		typ = "radio"
	}
	return "input" + attr("type", typ) + attr(VarKeyAttr, l.Var) + attr(VarValueAttr, l.Value) + ":checked"
}

// String returns the literal as a pseudo-class on the figure container.
func (l Literal) String() string {
	has := ":has(" + l.input() + ")"
	if l.Checked {
		return has
	}
	return ":not(" + has + ")"
}

// compound returns the term as a compound selector on the figure container.
func (t Term) compound(scope Scope) string {
	var b strings.Builder
	b.WriteString(scope.Selector())
	for _, l := range t {
		b.WriteString(l.String())
	}
	return b.String()
}

// selectors returns one selector per term of a condition, each followed by
// the target selector for the governed visual. A condition without terms
// results in a single selector which never matches.
func (c Condition) selectors(scope Scope, target string) []string {
	if len(c) == 0 {
		never := scope.Selector() + ":not(" + scope.Selector() + ")"
		return []string{never + " " + target}
	}
	sels := make([]string, len(c))
	for i, t := range c {
		sels[i] = t.compound(scope) + " " + target
	}
	return sels
}

// ViewTarget returns the selector of the container holding the visual for
// a view key identifier.
func ViewTarget(id string) string {
	return "." + ViewClass + attr(ViewAttr, id)
}

// PlaceholderTarget returns the selector of the dedicated fallback container.
func PlaceholderTarget() string {
	return "." + FallbackClass
}

func attr(name, value string) string {
	return "[" + name + "=" + QuoteString(value) + "]"
}

// QuoteString returns s as a double-quoted CSS string. Angle brackets are
// escaped, so the string is safe inside an HTML style element.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\a `)
		case '<':
			b.WriteString(`\3c `) // keeps "</style>" out of style elements
		case '>':
			b.WriteString(`\3e `)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
