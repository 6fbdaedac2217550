package cssplt

import (
	"fmt"
	"html"
	"sort"

	"github.com/npillmayer/cssplt/viewkey"
)

// Visual is an opaque, already rendered visual, e.g. an inline <svg> element
// or an <img> tag. Figures never inspect visuals; they are copied into the
// markup verbatim.
type Visual string

// Text creates a visual from plain text, which is escaped.
func Text(s string) Visual {
	return Visual(`<p class="cssplt-note">` + html.EscapeString(s) + `</p>`)
}

// Image creates a visual referencing an image source, e.g. a data URI.
func Image(src, alt string) Visual {
	return Visual(fmt.Sprintf(`<img src="%s" alt="%s">`,
		html.EscapeString(src), html.EscapeString(alt)))
}

// missing returns the keys of an enumeration without a visual, and the
// identifiers of visuals which do not belong to any key.
func missing(enum *viewkey.Enumeration, visuals map[viewkey.ViewKey]Visual) ([]viewkey.ViewKey, []string) {
	var absent []viewkey.ViewKey
	for _, k := range enum.Keys() {
		if _, ok := visuals[k]; !ok {
			absent = append(absent, k)
		}
	}
	var extra []string
	for k := range visuals {
		if !enum.Contains(k) {
			extra = append(extra, k.ID())
		}
	}
	sort.Strings(extra)
	return absent, extra
}
