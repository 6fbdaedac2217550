package selector

import (
	"fmt"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerate(t *testing.T, build func(*statevar.Registry) error) *viewkey.Enumeration {
	reg := statevar.NewRegistry()
	require.NoError(t, build(reg))
	return viewkey.Enumerate(reg.Table())
}

// allStates enumerates every live state of a table, including states where a
// single-choice variable has no active option.
func allStates(table statevar.Table) []State {
	states := []State{{}}
	for _, v := range table.Variables() {
		var next []State
		for _, s := range states {
			switch x := v.(type) {
			case *statevar.SingleChoice:
				for _, val := range append(x.Values(), "") {
					n := copyState(s)
					if val != "" {
						n[x.Name()] = []string{val}
					}
					next = append(next, n)
				}
			case *statevar.BooleanGroup:
				tags := x.SortedTags()
				for mask := 0; mask < 1<<len(tags); mask++ {
					n := copyState(s)
					for i, tag := range tags {
						if mask&(1<<i) != 0 {
							n[x.Name()] = append(n[x.Name()], tag)
						}
					}
					next = append(next, n)
				}
			}
		}
		states = next
	}
	return states
}

func copyState(s State) State {
	n := make(State, len(s))
	for k, v := range s {
		n[k] = append([]string(nil), v...)
	}
	return n
}

func TestScenarioA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.selector")
	defer teardown()
	//
	enum := enumerate(t, func(reg *statevar.Registry) error {
		if _, err := reg.RegisterSingleChoice("metric", statevar.Options("accuracy", "latency")); err != nil {
			return err
		}
		_, err := reg.RegisterBooleanGroup("tags", []string{"a", "b", "c"}, statevar.Any)
		return err
	})
	rs := Synthesize(enum, Scope{FigureID: "fig"}, PlaceholderTarget())
	require.Len(t, rs.Keys, 16)
	perMetric := map[string]int{}
	noTags := 0
	for _, r := range rs.Keys {
		m, _ := r.Key.Choice("metric")
		perMetric[m]++
		if s, _ := r.Key.Subset("tags"); len(s) == 0 {
			noTags++
		}
	}
	assert.Equal(t, map[string]int{"accuracy": 8, "latency": 8}, perMetric)
	assert.Equal(t, 2, noTags)
	for _, s := range allStates(enum.Table()) {
		m := rs.Matching(s)
		if len(m) != 1 {
			t.Errorf("state %v matches %d rules: %v", s, len(m), m)
			continue
		}
		_, hasMetric := s["metric"]
		if hasMetric == m[0].Fallback {
			t.Errorf("state %v: expected fallback = %v, got rule %v", s, !hasMetric, m[0])
		}
	}
}

func TestScenarioB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.selector")
	defer teardown()
	//
	tags := make([]string, 10)
	for i := range tags {
		tags[i] = fmt.Sprintf("t%d", i)
	}
	enum := enumerate(t, func(reg *statevar.Registry) error {
		_, err := reg.RegisterBooleanGroup("tags", tags, statevar.Any)
		return err
	})
	rs := Synthesize(enum, Scope{FigureID: "fig"}, PlaceholderTarget())
	require.Len(t, rs.Keys, 11)
	assert.Len(t, rs.Fallback.When, 45) // one term per pair of tags
	for _, s := range allStates(enum.Table()) {
		m := rs.Matching(s)
		if len(m) != 1 {
			t.Fatalf("state %v matches %d rules", s, len(m))
		}
		if active := len(s["tags"]); (active >= 2) != m[0].Fallback {
			t.Errorf("state with %d active tags matched %v", active, m[0])
		}
	}
	m := rs.Matching(State{"tags": {"t3", "t7"}})
	require.Len(t, m, 1)
	assert.True(t, m[0].Fallback)
}

func TestScenarioC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.selector")
	defer teardown()
	//
	enum := enumerate(t, func(reg *statevar.Registry) error {
		_, err := reg.RegisterBooleanGroup("g", []string{"x", "y"}, statevar.All)
		return err
	})
	rs := Synthesize(enum, Scope{FigureID: "fig"}, PlaceholderTarget())
	require.Len(t, rs.Keys, 4)
	m := rs.Matching(State{"g": {"x", "y"}})
	require.Len(t, m, 1)
	assert.Equal(t, "g={x,y}", m[0].Key.ID())
	m = rs.Matching(State{"g": {"y"}})
	require.Len(t, m, 1)
	assert.Equal(t, "g={y}", m[0].Key.ID())
	m = rs.Matching(State{})
	require.Len(t, m, 1)
	assert.Equal(t, "g={}", m[0].Key.ID())
	assert.Empty(t, rs.Fallback.When, "power-set groups leave nothing uncovered")
}

func TestSelectorNotation(t *testing.T) {
	enum := enumerate(t, func(reg *statevar.Registry) error {
		if _, err := reg.RegisterSingleChoice("metric", statevar.Options("acc")); err != nil {
			return err
		}
		_, err := reg.RegisterBooleanGroup("tags", []string{"b", "a"}, statevar.All)
		return err
	})
	scope := Scope{FigureID: "f1"}
	rs := Synthesize(enum, scope, PlaceholderTarget())
	r, ok := rs.Lookup(enum.Keys()[1])
	require.True(t, ok)
	sels := r.Selectors(scope)
	require.Len(t, sels, 1)
	want := `.cssplt-fig[data-fig="f1"]` +
		`:has(input[type="radio"][data-var-key="metric"][data-var-value="acc"]:checked)` +
		`:has(input[type="checkbox"][data-var-key="tags"][data-var-value="a"]:checked)` +
		`:not(:has(input[type="checkbox"][data-var-key="tags"][data-var-value="b"]:checked))` +
		` .cssplt-view[data-view="metric=acc;tags={a}"]`
	assert.Equal(t, want, sels[0])
	assert.Equal(t, []string{`.cssplt-fig[data-fig="f1"] .cssplt-view`}, rs.Base.Selectors(scope))
	css := rs.String()
	assert.True(t, strings.HasPrefix(css, `.cssplt-fig[data-fig="f1"] .cssplt-view {`), css)
	assert.Contains(t, css, "display: block;")
}

func TestSelectorsCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.selector")
	defer teardown()
	//
	enum := enumerate(t, func(reg *statevar.Registry) error {
		if _, err := reg.RegisterSingleChoice("metric", statevar.Options(`say "hi"`, `back\slash`)); err != nil {
			return err
		}
		_, err := reg.RegisterBooleanGroup("tags", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, statevar.Any)
		return err
	})
	scope := Scope{FigureID: "x"}
	rs := Synthesize(enum, scope, ViewTarget(enum.Keys()[0].ID()))
	for _, r := range rs.Rules() {
		for _, sel := range r.Selectors(scope) {
			if _, err := cascadia.Parse(sel); err != nil {
				t.Fatalf("selector does not compile: %v\n%s", err, sel)
			}
		}
	}
}

func TestEmptyTable(t *testing.T) {
	enum := viewkey.Enumerate(statevar.NewRegistry().Table())
	scope := Scope{FigureID: "e"}
	rs := Synthesize(enum, scope, PlaceholderTarget())
	require.Len(t, rs.Keys, 1)
	m := rs.Matching(State{})
	require.Len(t, m, 1)
	assert.False(t, m[0].Fallback)
	assert.Equal(t, []string{`.cssplt-fig[data-fig="e"]:not(.cssplt-fig[data-fig="e"]) .cssplt-view--fallback`},
		rs.Fallback.Selectors(scope))
}

func TestQuoteString(t *testing.T) {
	tests := []struct{ in, out string }{
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"", `""`},
		{"</style>", `"\3c /style\3e "`},
	}
	for _, tt := range tests {
		if got := QuoteString(tt.in); got != tt.out {
			t.Errorf("QuoteString(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}
