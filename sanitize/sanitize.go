/*
Package sanitize cleans rich text for control labels and notes.

Labels may carry a little inline markup, e.g. "<b>p95</b> latency". Anything
beyond an allowlist of inline tags is stripped, text is escaped, and the
result is balanced, so a label can never break out of its container.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sanitize

import (
	"io"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssplt.sanitize'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.sanitize")
}

// allowed holds the inline tags which survive sanitizing.
var allowed = map[atom.Atom]bool{
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Br:     true,
	atom.Span:   true,
}

// safeClass restricts class attribute values.
var safeClass = regexp.MustCompile(`^[a-zA-Z0-9_\-\s]+$`)

// HTML returns sanitized markup for s. Only the tags b, i, em, strong, br and
// span are kept, with no attributes other than a class of safe characters.
// All other tags are dropped, their text content is kept and escaped.
func HTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	var out strings.Builder
	var open []atom.Atom
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				tracer().Errorf("sanitizing %q: %v", s, z.Err())
				return html.EscapeString(s)
			}
			for i := len(open) - 1; i >= 0; i-- {
				out.WriteString("</" + open[i].String() + ">")
			}
			return out.String()
		case html.TextToken:
			out.WriteString(html.EscapeString(string(z.Text())))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if !allowed[tok.DataAtom] {
				tracer().Debugf("dropping tag <%s>", tok.Data)
				continue
			}
			if tok.DataAtom == atom.Br {
				out.WriteString("<br>")
				continue
			}
			out.WriteString("<" + tok.Data)
			for _, a := range tok.Attr {
				if strings.ToLower(a.Key) == "class" && safeClass.MatchString(a.Val) {
					out.WriteString(` class="` + html.EscapeString(a.Val) + `"`)
				}
			}
			if tt == html.SelfClosingTagToken {
				out.WriteString("></" + tok.Data + ">")
				continue
			}
			out.WriteString(">")
			open = append(open, tok.DataAtom)
		case html.EndTagToken:
			tok := z.Token()
			if !allowed[tok.DataAtom] || tok.DataAtom == atom.Br {
				continue
			}
			// close up to the matching open tag, drop unmatched end tags
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] == tok.DataAtom {
					for j := len(open) - 1; j >= i; j-- {
						out.WriteString("</" + open[j].String() + ">")
					}
					open = open[:i]
					break
				}
			}
		}
	}
}

// Text returns the plain text of s, with all markup removed. It is suitable
// for attribute values like titles.
func Text(s string) string {
	var out strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(out.String())
		case html.TextToken:
			out.Write(z.Text())
		}
	}
}
