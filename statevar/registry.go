package statevar

import (
	"sort"
	"strings"
	"unicode"
)

// Reserved characters may not appear in variable names, option values or
// tags, as they delimit the parts of a view key identifier.
const Reserved = "=;{},"

// Registry is an append-only, ordered collection of control variables.
// The zero value is not usable, please use NewRegistry.
//
// A registry is not safe for concurrent registration. Clients build it up
// front and take a Table snapshot afterwards.
type Registry struct {
	vars  []Variable
	names map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]int)}
}

// ChoiceOption is a type to configure single-choice variables at registration time.
type ChoiceOption func(*SingleChoice) error

// WithDefault sets the initially active option. Without it, the first option
// is the default.
func WithDefault(value string) ChoiceOption {
	return func(sc *SingleChoice) error {
		i := sc.IndexOf(value)
		if i < 0 {
			return &InvalidNameError{Name: value, Reason: "default is not an option of " + sc.name}
		}
		sc.dflt = i
		return nil
	}
}

// GroupOption is a type to configure tag groups at registration time.
type GroupOption func(*BooleanGroup) error

// WithTagLabels sets display labels for tags. Tags without an entry are
// labelled with their name.
func WithTagLabels(labels map[string]string) GroupOption {
	return func(g *BooleanGroup) error {
		for tag, label := range labels {
			if !g.Has(tag) {
				return &InvalidNameError{Name: tag, Reason: "label for unknown tag of " + g.name}
			}
			g.labels[tag] = label
		}
		return nil
	}
}

// RegisterSingleChoice appends a single-choice variable. Option values must
// be distinct and there must be at least one of them.
func (reg *Registry) RegisterSingleChoice(name string, options []Option, opts ...ChoiceOption) (*SingleChoice, error) {
	if err := reg.checkName(name); err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, &EmptyDomainError{Name: name, Kind: SingleChoiceKind}
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if err := CheckName(o.Value); err != nil {
			return nil, err
		}
		if seen[o.Value] {
			return nil, &InvalidNameError{Name: o.Value, Reason: "duplicate option of " + name}
		}
		seen[o.Value] = true
	}
	sc := &SingleChoice{name: name, options: make([]Option, len(options))}
	copy(sc.options, options)
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			return nil, err
		}
	}
	reg.append(sc)
	tracer().Debugf("registered %s, default = %q", sc, sc.Default().Value)
	return sc, nil
}

// RegisterBooleanGroup appends a group of boolean tags sharing a policy.
// Tags must be distinct and there must be at least one of them.
func (reg *Registry) RegisterBooleanGroup(name string, tags []string, policy Policy, opts ...GroupOption) (*BooleanGroup, error) {
	if err := reg.checkName(name); err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, &EmptyDomainError{Name: name, Kind: BooleanKind}
	}
	g := &BooleanGroup{
		name:   name,
		tags:   make([]string, len(tags)),
		labels: make(map[string]string),
		policy: policy,
	}
	copy(g.tags, tags)
	for _, t := range tags {
		if err := CheckName(t); err != nil {
			return nil, err
		}
	}
	g.sorted = g.Tags()
	sort.Strings(g.sorted)
	for i := 1; i < len(g.sorted); i++ {
		if g.sorted[i] == g.sorted[i-1] {
			return nil, &InvalidNameError{Name: g.sorted[i], Reason: "duplicate tag of " + name}
		}
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	reg.append(g)
	tracer().Debugf("registered %s", g)
	return g, nil
}

func (reg *Registry) checkName(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if _, exists := reg.names[name]; exists {
		return &DuplicateVariableError{Name: name}
	}
	return nil
}

func (reg *Registry) append(v Variable) {
	reg.names[v.Name()] = len(reg.vars)
	reg.vars = append(reg.vars, v)
}

// Len returns the number of registered variables.
func (reg *Registry) Len() int {
	return len(reg.vars)
}

// Table returns an immutable snapshot of the variables registered so far.
func (reg *Registry) Table() Table {
	vars := make([]Variable, len(reg.vars))
	copy(vars, reg.vars)
	return Table{vars: vars}
}

// CheckName checks that a string may serve as a variable name, option value
// or tag.
func CheckName(s string) error {
	if s == "" {
		return &InvalidNameError{Name: s, Reason: "must not be empty"}
	}
	if strings.ContainsAny(s, Reserved) {
		return &InvalidNameError{Name: s, Reason: "contains one of the reserved characters " + Reserved}
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return &InvalidNameError{Name: s, Reason: "contains control characters"}
	}
	return nil
}

// ---------------------------------------------------------------------------

// Table is an immutable snapshot of a registry, in registration order.
// The zero value is an empty table.
type Table struct {
	vars []Variable
}

// Len returns the number of variables.
func (t Table) Len() int {
	return len(t.vars)
}

// Variables returns all variables in registration order.
func (t Table) Variables() []Variable {
	vars := make([]Variable, len(t.vars))
	copy(vars, t.vars)
	return vars
}

// At returns the i-th variable.
func (t Table) At(i int) Variable {
	return t.vars[i]
}

// Lookup finds a variable by name.
func (t Table) Lookup(name string) (Variable, bool) {
	for _, v := range t.vars {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// SingleChoices returns the single-choice variables in registration order.
func (t Table) SingleChoices() []*SingleChoice {
	var scs []*SingleChoice
	for _, v := range t.vars {
		if sc, ok := v.(*SingleChoice); ok {
			scs = append(scs, sc)
		}
	}
	return scs
}

// Groups returns the boolean tag groups in registration order.
func (t Table) Groups() []*BooleanGroup {
	var gs []*BooleanGroup
	for _, v := range t.vars {
		if g, ok := v.(*BooleanGroup); ok {
			gs = append(gs, g)
		}
	}
	return gs
}

// String returns a compact description of the table, suitable for deriving
// identifiers.
func (t Table) String() string {
	parts := make([]string, len(t.vars))
	for i, v := range t.vars {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
