/*
Package css computes style properties for nodes of an HTML parse tree.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Only the part of the cascade needed to decide visibility is implemented:
rules are ordered by importance, then by the specificity of the best
matching selector, then by source order. Selectors are evaluated with
cascadia, which supports the :has(), :not() and :checked pseudo-classes.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssplt.css'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.css")
}
