/*
Package verify checks rendered figures for the dispatch property: for every
reachable control state exactly one view of a figure is displayed.

Check works on the rendered output only. It parses the markup and the style,
evaluates the display cascade for every view of every figure, and toggles
the controls of a figure through its reachable states, much like a reader
clicking the pills would.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package verify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt.verify'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.verify")
}
