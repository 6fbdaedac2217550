package viewkey

import (
	"fmt"
	"math"

	"github.com/npillmayer/cssplt/statevar"
)

// CrossProductWarnThreshold is the number of keys above which an enumeration
// carries a CrossProductWarning.
const CrossProductWarnThreshold = 4096

// UnreachableComboWarning is a non-fatal diagnostic: a tag group has too many
// tags for full power-set enumeration. Combinations of two or more active tags
// have no visual of their own and will display the fallback visual.
type UnreachableComboWarning struct {
	Group string
	Tags  int // number of tags in the group
	Kept  int // number of subsets enumerated
}

func (w *UnreachableComboWarning) Error() string {
	return fmt.Sprintf("tag group %q has %d tags, 2^%d exceeds %d: enumerating %d subsets, "+
		"combinations of two or more tags show the fallback", w.Group, w.Tags, w.Tags,
		MaxCombinations, w.Kept)
}

// CrossProductWarning is a non-fatal diagnostic: the product of the variable
// domains is large. The product is not capped, every key has to be rendered.
type CrossProductWarning struct {
	Keys      int
	Threshold int
}

func (w *CrossProductWarning) Error() string {
	return fmt.Sprintf("%d view keys exceed %d; every key needs its own visual", w.Keys, w.Threshold)
}

// Dimension is the enumerated domain of one variable.
type Dimension struct {
	Variable statevar.Variable
	Strategy Strategy     // for tag groups; single-choice variables are always exact
	Values   []Coordinate // covered coordinates, in enumeration order
}

// Enumeration is the ordered set of view keys for a variable table.
// It is immutable.
type Enumeration struct {
	table    statevar.Table
	dims     []Dimension
	keys     []ViewKey
	index    map[ViewKey]int
	warnings []error
}

// Enumerate computes the view keys for a table, using DefaultCap.
// The Cartesian product is taken in registration order, with the last
// variable varying fastest.
func Enumerate(table statevar.Table) *Enumeration {
	return enumerate(table, DefaultCap)
}

func enumerate(table statevar.Table, policy CapPolicy) *Enumeration {
	enum := &Enumeration{table: table}
	for _, v := range table.Variables() {
		dim := Dimension{Variable: v}
		switch x := v.(type) {
		case *statevar.SingleChoice:
			for _, val := range x.Values() {
				dim.Values = append(dim.Values, Coordinate{
					Variable: x.Name(), Kind: statevar.SingleChoiceKind, Value: val,
				})
			}
		case *statevar.BooleanGroup:
			dim.Strategy = policy.Strategy(x.Len())
			for _, s := range policy.Subsets(x.SortedTags()) {
				dim.Values = append(dim.Values, Coordinate{
					Variable: x.Name(), Kind: statevar.BooleanKind, Tags: s,
				})
			}
			if dim.Strategy == Singletons {
				w := &UnreachableComboWarning{Group: x.Name(), Tags: x.Len(), Kept: len(dim.Values)}
				tracer().Infof("%s", w)
				enum.warnings = append(enum.warnings, w)
			}
		}
		enum.dims = append(enum.dims, dim)
	}
	n := count(enum.dims)
	if n > CrossProductWarnThreshold {
		w := &CrossProductWarning{Keys: n, Threshold: CrossProductWarnThreshold}
		tracer().Infof("%s", w)
		enum.warnings = append(enum.warnings, w)
	}
	enum.product()
	tracer().Debugf("enumerated %d view keys for %d variables", len(enum.keys), len(enum.dims))
	return enum
}

// product builds the Cartesian product of the dimensions, odometer style.
func (enum *Enumeration) product() {
	for _, d := range enum.dims {
		if len(d.Values) == 0 {
			enum.index = map[ViewKey]int{}
			return
		}
	}
	enum.index = make(map[ViewKey]int)
	pos := make([]int, len(enum.dims))
	coords := make([]Coordinate, len(enum.dims))
	for {
		for i, d := range enum.dims {
			coords[i] = d.Values[pos[i]]
		}
		key := Make(coords...)
		enum.index[key] = len(enum.keys)
		enum.keys = append(enum.keys, key)
		i := len(pos) - 1
		for i >= 0 {
			pos[i]++
			if pos[i] < len(enum.dims[i].Values) {
				break
			}
			pos[i] = 0
			i--
		}
		if i < 0 {
			return
		}
	}
}

// Count predicts the number of view keys for a table without enumerating
// them. The result saturates at math.MaxInt.
func Count(table statevar.Table) int {
	n := 1
	for _, v := range table.Variables() {
		k := v.Len()
		if g, ok := v.(*statevar.BooleanGroup); ok {
			k = DefaultCap.KeyCount(g.Len())
		}
		n = mulSaturated(n, k)
	}
	return n
}

func count(dims []Dimension) int {
	n := 1
	for _, d := range dims {
		n = mulSaturated(n, len(d.Values))
	}
	return n
}

func mulSaturated(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

// Table returns the variable table the keys were enumerated from.
func (enum *Enumeration) Table() statevar.Table {
	return enum.table
}

// Len returns the number of view keys.
func (enum *Enumeration) Len() int {
	return len(enum.keys)
}

// Keys returns the view keys in enumeration order.
func (enum *Enumeration) Keys() []ViewKey {
	keys := make([]ViewKey, len(enum.keys))
	copy(keys, enum.keys)
	return keys
}

// Contains reports whether key is one of the enumerated keys.
func (enum *Enumeration) Contains(key ViewKey) bool {
	_, ok := enum.index[key]
	return ok
}

// Lookup finds an enumerated key by its identifier.
func (enum *Enumeration) Lookup(id string) (ViewKey, bool) {
	key := ViewKey{id: id}
	_, ok := enum.index[key]
	return key, ok
}

// Dimensions returns the enumerated domain of every variable, in
// registration order.
func (enum *Enumeration) Dimensions() []Dimension {
	dims := make([]Dimension, len(enum.dims))
	copy(dims, enum.dims)
	return dims
}

// Warnings returns the non-fatal diagnostics of the enumeration, i.e.
// *UnreachableComboWarning and *CrossProductWarning values.
func (enum *Enumeration) Warnings() []error {
	ws := make([]error, len(enum.warnings))
	copy(ws, enum.warnings)
	return ws
}

// Capped returns true if at least one tag group is enumerated with the
// singleton strategy.
func (enum *Enumeration) Capped() bool {
	for _, d := range enum.dims {
		if d.Variable.Kind() == statevar.BooleanKind && d.Strategy == Singletons {
			return true
		}
	}
	return false
}
