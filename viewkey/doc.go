/*
Package viewkey enumerates the control-state combinations of a chart which
each need a pre-rendered visual.

A view key fixes one option for every single-choice variable and one tag
subset for every boolean tag group. The set of keys is the Cartesian product
of the variables' domains, taken in registration order. For single-choice
variables the domain is the full option list. For tag groups the domain is
decided by a CapPolicy, purely from the number of tags n:

	2^n ≤ 256   →  the full power set of the tags (2^n subsets)
	2^n > 256   →  the empty subset and the n singletons (n+1 subsets)

The cap applies within a group only. The product across several groups is
not capped; Enumerate flags large products with a CrossProductWarning.

View keys are immutable and comparable, and may be used as map keys. Their
identity is a canonical string such as

	metric=accuracy;tags={a,c}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viewkey

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt.viewkey'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.viewkey")
}
