package sanitize

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssplt.sanitize")
	defer teardown()
	//
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"   ", ""},
		{"plain", "plain"},
		{"a < b & c", "a &lt; b &amp; c"},
		{"<b>bold</b> text", "<b>bold</b> text"},
		{`<span class="hl x-1">hi</span>`, `<span class="hl x-1">hi</span>`},
		{`<span class="a;b" style="color:red">hi</span>`, `<span>hi</span>`},
		{`<script>alert(1)</script>`, `alert(1)`},
		{`<a href="javascript:x">link</a>`, `link`},
		{"line<br/>break", "line<br>break"},
		{"<b><i>open", "<b><i>open</i></b>"},
		{"</b>stray", "stray"},
		{"<b><i>x</b>y", "<b><i>x</i></b>y"},
		{"&lt;tag&gt;", "&lt;tag&gt;"},
		{`<img src=x onerror=alert(1)>`, ``},
	}
	for _, tt := range tests {
		if got := HTML(tt.in); got != tt.out {
			t.Errorf("HTML(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestText(t *testing.T) {
	if got := Text("<b>p95</b> latency "); got != "p95 latency" {
		t.Errorf("Text = %q, want %q", got, "p95 latency")
	}
}
