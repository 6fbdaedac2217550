package cssplt

import (
	"strings"

	"github.com/npillmayer/cssplt/sanitize"
)

const pageStyle = `body {
  margin: 1rem;
  font-family: system-ui, -apple-system, "Segoe UI", sans-serif;
}
`

// Document wraps rendered figures into a minimal, self-contained HTML page.
// styles and markups are placed in the given order. Figures must have
// distinct identifiers (see WithID); package verify reports duplicates.
func Document(title string, markup, style []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + esc(sanitize.Text(title)) + "</title>\n")
	b.WriteString("<style>\n" + pageStyle)
	for _, s := range style {
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("</style>\n</head>\n<body>\n")
	if t := sanitize.HTML(title); t != "" {
		b.WriteString("<h1>" + t + "</h1>\n")
	}
	for _, m := range markup {
		b.WriteString(m)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
