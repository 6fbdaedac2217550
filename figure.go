package cssplt

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/npillmayer/cssplt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssplt/selector"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
)

// Figure is a chart with control variables. It enumerates the view keys for
// its variables and synthesizes the display rules once, on creation.
//
// A figure holds no mutable state; Render may be called any number of times,
// concurrently, and will produce identical output for identical visuals.
type Figure struct {
	id            string
	table         statevar.Table
	enum          *viewkey.Enumeration
	rules         *selector.RuleSet
	fallback      Fallback
	theme         Theme
	controlStyles bool
	titles        map[string]string
}

// Option configures a figure.
type Option func(*Figure)

// WithID sets the figure identifier. Identifiers must be unique within a
// document. By default, the identifier is derived from the variables.
func WithID(id string) Option {
	return func(fig *Figure) {
		fig.id = id
	}
}

// WithTheme sets the colours of the controls. Empty colours are taken from
// the default theme.
func WithTheme(theme Theme) Option {
	return func(fig *Figure) {
		fig.theme = theme.Merge(DefaultTheme())
	}
}

// WithoutControlStyles leaves the cosmetics of the controls to the
// document. Only the display rules are rendered.
func WithoutControlStyles() Option {
	return func(fig *Figure) {
		fig.controlStyles = false
	}
}

// WithTitles sets the titles shown in front of the controls, per variable
// name. Titles may contain inline markup.
func WithTitles(titles map[string]string) Option {
	return func(fig *Figure) {
		fig.titles = make(map[string]string, len(titles))
		for k, v := range titles {
			fig.titles[k] = v
		}
	}
}

var figureID = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// New creates a figure for a table of control variables.
//
// Enumeration warnings (see package viewkey) are traced and available with
// Warnings. New returns an error if the figure identifier is invalid or
// if fallback reuses a view key which is not enumerated.
//
// The default identifier depends on the table only, so two figures built
// from equal tables get the same identifier. Such figures share their radio
// groups and style rules and must not be placed into the same document;
// give them distinct identifiers with WithID.
func New(table statevar.Table, fallback Fallback, opts ...Option) (*Figure, error) {
	fig := &Figure{
		id:            defaultID(table),
		table:         table,
		fallback:      fallback,
		theme:         DefaultTheme(),
		controlStyles: true,
	}
	for _, opt := range opts {
		opt(fig)
	}
	if !figureID.MatchString(fig.id) {
		return nil, &InvalidIDError{ID: fig.id}
	}
	fig.enum = viewkey.Enumerate(table)
	if key, ok := fallback.Reused(); ok && !fig.enum.Contains(key) {
		return nil, &FallbackKeyError{Key: key}
	}
	for _, w := range fig.enum.Warnings() {
		tracer().Infof("figure %s: %v", fig.id, w)
	}
	fig.rules = selector.Synthesize(fig.enum, fig.Scope(), fallback.target())
	tracer().Debugf("figure %s: %d view keys, fallback = %v", fig.id, fig.enum.Len(), fallback)
	return fig, nil
}

// defaultID derives a figure identifier from the variables of a table.
func defaultID(table statevar.Table) string {
	h := fnv.New32a()
	h.Write([]byte(table.String()))
	return fmt.Sprintf("f%08x", h.Sum32())
}

// ID returns the figure identifier.
func (fig *Figure) ID() string {
	return fig.id
}

// Scope returns the figure container all rules of the figure are confined to.
func (fig *Figure) Scope() selector.Scope {
	return selector.Scope{FigureID: fig.id}
}

// Table returns the control variables of the figure.
func (fig *Figure) Table() statevar.Table {
	return fig.table
}

// Keys returns the view keys a producer has to provide visuals for, in
// enumeration order.
func (fig *Figure) Keys() []viewkey.ViewKey {
	return fig.enum.Keys()
}

// Enumeration returns the view key enumeration of the figure.
func (fig *Figure) Enumeration() *viewkey.Enumeration {
	return fig.enum
}

// Rules returns the synthesized display rules.
func (fig *Figure) Rules() *selector.RuleSet {
	return fig.rules
}

// Warnings returns the enumeration warnings.
func (fig *Figure) Warnings() []error {
	return fig.enum.Warnings()
}

// Fallback returns the fallback the figure was created with.
func (fig *Figure) Fallback() Fallback {
	return fig.fallback
}

// Render returns the markup fragment and the style fragment of a figure.
// visuals must hold a visual for every enumerated view key; otherwise a
// *MissingVisualError listing the absent keys is returned and nothing is
// rendered. Visuals for keys which are not enumerated are ignored.
//
// The style fragment has to be placed into the document's style element.
func (fig *Figure) Render(visuals map[viewkey.ViewKey]Visual) (markup, style string, err error) {
	absent, extra := missing(fig.enum, visuals)
	if len(absent) > 0 {
		return "", "", &MissingVisualError{Keys: absent}
	}
	for _, id := range extra {
		tracer().Infof("figure %s: ignoring visual for unknown view key %q", fig.id, id)
	}
	return fig.markup(visuals), fig.Stylesheet().String(), nil
}

// Stylesheet returns the style of a figure: control cosmetics, if enabled,
// followed by the display rules.
func (fig *Figure) Stylesheet() *douceuradapter.CSSStyles {
	sheet := douceuradapter.New()
	if fig.controlStyles {
		sheet.AppendRules(fig.theme.Stylesheet(fig.Scope()))
	}
	sheet.AppendRules(fig.rules.Stylesheet())
	return sheet
}

func (fig *Figure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "figure %s with %d view keys, fallback = %v", fig.id, fig.enum.Len(), fig.fallback)
	for _, v := range fig.table.Variables() {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}
