/*
Package selector compiles the view keys of a chart into structural CSS rules.

There is no script at view time. All dispatch from control state to visible
view is a static decision table, evaluated by the document viewer's selector
engine whenever a control changes. Control state lives in hidden inputs:

	<input type="radio" data-var-key="metric" data-var-value="accuracy" checked>
	<input type="checkbox" data-var-key="tags" data-var-value="a">

A rule for a view key is a conjunction of literals on the figure container,
one :has(…:checked) or :not(:has(…:checked)) per control input involved:

	.cssplt-fig[data-fig="f"]
	    :has(input[type="radio"][data-var-key="metric"][data-var-value="accuracy"]:checked)
	    :has(input[type="checkbox"][data-var-key="tags"][data-var-value="a"]:checked)
	    :not(:has(input[type="checkbox"][data-var-key="tags"][data-var-value="b"]:checked))
	    .cssplt-view[data-view="metric=accuracy;tags={a}"] { display: block; }

Tag subsets are matched on exact equality, for both tag policies, so that at
most one key rule matches any control state. Exactly one additional fallback
rule matches the states no key covers: states where a single-choice variable
has no active option, and states with two or more active tags in a group
which has been enumerated with singletons only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.selector")
}
