package verify

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssplt/dom/domdbg"
	"github.com/npillmayer/cssplt/dom/style/css"
	"github.com/npillmayer/cssplt/dom/style/cssom"
	"github.com/npillmayer/cssplt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssplt/selector"
	"golang.org/x/net/html"
)

// ErrNoFigure is returned by Check if the markup contains no figure.
var ErrNoFigure = errors.New("no figure found in markup")

// ErrInvalidLimit is returned by Check for a state limit below 1 or a
// negative number of active tags.
var ErrInvalidLimit = errors.New("invalid limit")

// Defaults for checking large figures.
const (
	DefaultMaxStates = 4096
	DefaultMaxActive = 2
)

type options struct {
	maxStates int
	maxActive int
	dump      DumpFormat
}

// Option configures a check.
type Option func(*options)

// MaxStates limits the number of control states checked per figure.
// If a figure has more reachable states, only states with at most
// MaxActive active tags per group are checked, and if these are still
// too many, the check is truncated.
func MaxStates(n int) Option {
	return func(o *options) {
		o.maxStates = n
	}
}

// MaxActive sets the number of active tags per group for figures with too
// many reachable states.
func MaxActive(n int) Option {
	return func(o *options) {
		o.maxActive = n
	}
}

// DumpFormat selects how the first violating state of a figure is recorded.
type DumpFormat int

// Dump formats.
const (
	NoDump   DumpFormat = iota
	DumpTree            // element tree with computed display modes
	DumpDot             // GraphViz diagram, hidden elements greyed out
)

// Dump records the figure's elements for the first violation of every
// figure, in the state the violation occurred in.
func Dump(f DumpFormat) Option {
	return func(o *options) {
		o.dump = f
	}
}

// Violation is a control state of a figure for which not exactly one view
// is displayed.
type Violation struct {
	Figure  string
	State   selector.State
	Visible []string // data-view attributes of the displayed views
	Dump    string   // figure dump, see option Dump
}

func (v Violation) String() string {
	names := make([]string, 0, len(v.State))
	for name := range v.State {
		names = append(names, name)
	}
	sort.Strings(names)
	var st strings.Builder
	for i, name := range names {
		if i > 0 {
			st.WriteString(" ")
		}
		fmt.Fprintf(&st, "%s=%v", name, v.State[name])
	}
	return fmt.Sprintf("figure %s, state [%s]: %d views displayed %q", v.Figure, st.String(),
		len(v.Visible), v.Visible)
}

// Report is the result of a check.
type Report struct {
	Figures    int
	States     int // states checked, over all figures
	Truncated  bool
	Violations []Violation
	Duplicates []string // figure IDs used more than once
}

// OK is true if no violations have been found and all figure IDs are
// distinct. Figures sharing an ID share their radio groups and style rules,
// so their controls interfere.
func (r *Report) OK() bool {
	return len(r.Violations) == 0 && len(r.Duplicates) == 0
}

func (r *Report) String() string {
	s := fmt.Sprintf("%d figures, %d states checked, %d violations", r.Figures, r.States, len(r.Violations))
	if len(r.Duplicates) > 0 {
		s += fmt.Sprintf(", duplicate figure IDs %q", r.Duplicates)
	}
	if r.Truncated {
		s += " (truncated)"
	}
	return s
}

var (
	figureSel = cascadia.MustCompile("." + selector.FigureClass)
	viewSel   = cascadia.MustCompile("." + selector.ViewClass)
)

// Check verifies rendered figures. markup may be a fragment or a complete
// document; style elements within it are considered, followed by the rules
// of style. The markup is not modified.
func Check(markup, style string, opts ...Option) (*Report, error) {
	o := options{maxStates: DefaultMaxStates, maxActive: DefaultMaxActive}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxStates < 1 {
		return nil, fmt.Errorf("%w: state limit %d, must be at least 1", ErrInvalidLimit, o.maxStates)
	}
	if o.maxActive < 0 {
		return nil, fmt.Errorf("%w: %d active tags", ErrInvalidLimit, o.maxActive)
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("cannot parse markup: %w", err)
	}
	embedded, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style element: %w", err)
	}
	sheets := make([]cssom.StyleSheet, 0, len(embedded)+1)
	for _, s := range embedded {
		sheets = append(sheets, s)
	}
	if strings.TrimSpace(style) != "" {
		s, err := douceuradapter.Parse(style)
		if err != nil {
			return nil, fmt.Errorf("cannot parse style: %w", err)
		}
		sheets = append(sheets, s)
	}
	rules, err := css.Compile(sheets...)
	if err != nil {
		return nil, err
	}
	figs := figureSel.MatchAll(doc)
	if len(figs) == 0 {
		return nil, ErrNoFigure
	}
	report := &Report{Figures: len(figs)}
	seen := make(map[string]int, len(figs))
	for _, fig := range figs {
		id := attr(fig, selector.FigureAttr)
		if seen[id]++; seen[id] == 2 {
			report.Duplicates = append(report.Duplicates, id)
		}
		checkFigure(fig, rules, o, report)
	}
	tracer().Infof("%v", report)
	return report, nil
}

func checkFigure(fig *html.Node, rules []css.CompiledRule, o options, report *Report) {
	id := attr(fig, selector.FigureAttr)
	ctrls := controls(fig)
	views := viewSel.MatchAll(fig)
	limit := -1
	if total(ctrls) > o.maxStates {
		limit = o.maxActive
		tracer().Infof("figure %s: too many states, checking at most %d active tags per group", id, limit)
	}
	alts := make([][][]string, len(ctrls))
	saved := make([][]bool, len(ctrls))
	for i, c := range ctrls {
		alts[i] = c.alternatives(limit)
		saved[i] = c.snapshot()
	}
	n, found := 0, false
	states(ctrls, alts, func(st selector.State) bool {
		if n == o.maxStates {
			report.Truncated = true
			return false
		}
		n++
		var visible []string
		for _, v := range views {
			if css.IsRendered(v, rules) {
				visible = append(visible, viewName(v))
			}
		}
		if len(visible) != 1 {
			v := Violation{Figure: id, State: st, Visible: visible}
			if !found {
				v.Dump = dump(fig, rules, o.dump)
				found = true
			}
			report.Violations = append(report.Violations, v)
		}
		return true
	})
	for i, c := range ctrls {
		c.restore(saved[i])
	}
	report.States += n
	tracer().Debugf("figure %s: %d controls, %d views, %d states", id, len(ctrls), len(views), n)
}

func dump(fig *html.Node, rules []css.CompiledRule, f DumpFormat) string {
	switch f {
	case DumpTree:
		return domdbg.Tree(fig, rules).String()
	case DumpDot:
		var b strings.Builder
		if err := domdbg.ToGraphViz(fig, rules, &b); err != nil {
			tracer().Errorf("cannot draw figure: %v", err)
			return ""
		}
		return b.String()
	}
	return ""
}

// total returns the number of reachable states of a figure, saturating.
func total(ctrls []*control) int {
	t := 1
	for _, c := range ctrls {
		n := c.count()
		if n != 0 && t > math.MaxInt/n {
			return math.MaxInt
		}
		t *= n
	}
	return t
}

func viewName(v *html.Node) string {
	if hasAttr(v, selector.ViewAttr) {
		return attr(v, selector.ViewAttr)
	}
	for _, c := range strings.Fields(attr(v, "class")) {
		if c == selector.FallbackClass {
			return "(fallback)"
		}
	}
	return "(unnamed)"
}
