/*
Package cssplt renders interactive-looking charts as static markup and style,
without any script.

A chart has control variables (see package statevar). Every combination of
control state the chart supports gets its own pre-rendered visual, keyed by
a view key (see package viewkey). Structural selector rules (see package
selector) make exactly one of these visuals visible for any control state;
the document viewer's style engine performs the "interaction" whenever a
control is toggled.

Figure is the entry point for chart producers (heatmaps, density plots,
radar charts, …):

	reg := statevar.NewRegistry()
	reg.RegisterSingleChoice("metric", statevar.Options("accuracy", "latency"))
	reg.RegisterBooleanGroup("tags", []string{"a", "b", "c"}, statevar.Any)

	fig, err := cssplt.New(reg.Table(), cssplt.Placeholder(cssplt.Text("n/a")))
	visuals := make(map[viewkey.ViewKey]cssplt.Visual)
	for _, key := range fig.Keys() {
		visuals[key] = drawChart(key)  // producer-specific
	}
	markup, style, err := fig.Render(visuals)

Drawing visuals and filtering data are left to the producer. Producers filter
rows for a key's tag subset with the group's policy (statevar.Policy.Matches).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssplt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt")
}
