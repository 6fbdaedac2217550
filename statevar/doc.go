/*
Package statevar describes the control variables of a script-free interactive chart.

A chart offers two kinds of controls: single-choice variables (rendered as a
row of radio buttons, exactly one option active at a time) and boolean tag
groups (rendered as checkboxes which may be toggled independently). Every tag
group carries a combination policy, ANY or ALL, which tells data producers how
an active tag subset selects rows.

Variables are collected in a Registry. A registry is append-only: variables may
be registered, but never removed or altered. Clients take an immutable Table
snapshot from a registry and hand it to package viewkey for enumeration.

	reg := statevar.NewRegistry()
	reg.RegisterSingleChoice("metric", statevar.Options("accuracy", "latency"))
	reg.RegisterBooleanGroup("tags", []string{"a", "b", "c"}, statevar.Any)
	table := reg.Table()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package statevar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt.statevar'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.statevar")
}
