package verify

import (
	"math"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssplt/selector"
	"golang.org/x/net/html"
)

// control is a variable as found in the markup: the inputs sharing a
// data-var-key attribute.
type control struct {
	name   string
	radio  bool
	values []string
	inputs []*html.Node
}

var inputSel = cascadia.MustCompile(`input[` + selector.VarKeyAttr + `]`)

// controls collects the controls of a figure in document order.
func controls(fig *html.Node) []*control {
	var ctrls []*control
	byName := make(map[string]*control)
	for _, in := range inputSel.MatchAll(fig) {
		name := attr(in, selector.VarKeyAttr)
		c, ok := byName[name]
		if !ok {
			c = &control{name: name, radio: attr(in, "type") == "radio"}
			byName[name] = c
			ctrls = append(ctrls, c)
		}
		c.values = append(c.values, attr(in, selector.VarValueAttr))
		c.inputs = append(c.inputs, in)
	}
	return ctrls
}

// alternatives returns the reachable states of a control. A group of radio
// buttons has exactly one active value, or none if none is checked in the
// markup; once checked, a radio button cannot be cleared by the reader.
// Checkboxes reach every subset; with maxActive >= 0 only subsets of at
// most maxActive values are considered.
func (c *control) alternatives(maxActive int) [][]string {
	if c.radio {
		var alts [][]string
		if !c.anyChecked() {
			alts = append(alts, nil)
		}
		for _, v := range c.values {
			alts = append(alts, []string{v})
		}
		return alts
	}
	k := len(c.values)
	if maxActive >= 0 && maxActive < k {
		k = maxActive
	}
	var alts [][]string
	for size := 0; size <= k; size++ {
		combinations(len(c.values), size, func(ix []int) {
			sub := make([]string, len(ix))
			for i, j := range ix {
				sub[i] = c.values[j]
			}
			alts = append(alts, sub)
		})
	}
	return alts
}

// count returns the number of reachable states without enumerating them.
// It saturates at math.MaxInt.
func (c *control) count() int {
	if c.radio {
		if c.anyChecked() {
			return len(c.values)
		}
		return len(c.values) + 1
	}
	if len(c.values) >= 62 {
		return math.MaxInt
	}
	return 1 << len(c.values)
}

func (c *control) anyChecked() bool {
	for _, in := range c.inputs {
		if hasAttr(in, "checked") {
			return true
		}
	}
	return false
}

// apply checks exactly the inputs for the given values.
func (c *control) apply(values []string) {
	for i, in := range c.inputs {
		setChecked(in, contains(values, c.values[i]))
	}
}

// snapshot and restore keep the markup unchanged across a check.
func (c *control) snapshot() []bool {
	s := make([]bool, len(c.inputs))
	for i, in := range c.inputs {
		s[i] = hasAttr(in, "checked")
	}
	return s
}

func (c *control) restore(s []bool) {
	for i, in := range c.inputs {
		setChecked(in, s[i])
	}
}

// states calls f for every combination of alternatives, the last control
// varying fastest, until f returns false.
func states(ctrls []*control, alts [][][]string, f func(selector.State) bool) {
	if len(ctrls) == 0 {
		f(selector.State{})
		return
	}
	pos := make([]int, len(ctrls))
	for {
		st := make(selector.State, len(ctrls))
		for i, c := range ctrls {
			a := alts[i][pos[i]]
			c.apply(a)
			if len(a) > 0 {
				st[c.name] = a
			}
		}
		if !f(st) {
			return
		}
		i := len(pos) - 1
		for ; i >= 0; i-- {
			pos[i]++
			if pos[i] < len(alts[i]) {
				break
			}
			pos[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// combinations calls f with every k-element index combination of 0…n-1, in
// lexicographic order.
func combinations(n, k int, f func([]int)) {
	if k > n {
		return
	}
	ix := make([]int, k)
	for i := range ix {
		ix[i] = i
	}
	for {
		f(ix)
		i := k - 1
		for i >= 0 && ix[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		ix[i]++
		for j := i + 1; j < k; j++ {
			ix[j] = ix[j-1] + 1
		}
	}
}

// --- Attributes -------------------------------------------------------

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setChecked(n *html.Node, checked bool) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != "checked" {
			attrs = append(attrs, a)
		}
	}
	if checked {
		attrs = append(attrs, html.Attribute{Key: "checked"})
	}
	n.Attr = attrs
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
