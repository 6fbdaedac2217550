package cssplt

import (
	"github.com/npillmayer/cssplt/dom/style"
	"github.com/npillmayer/cssplt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssplt/selector"
)

// Theme holds the colours of the control cosmetics. Controls are rendered
// as pills: the inputs themselves are invisible, their labels toggle them.
type Theme struct {
	Background    string `yaml:"background"`
	Surface       string `yaml:"surface"`
	Foreground    string `yaml:"foreground"`
	Border        string `yaml:"border"`
	PillBg        string `yaml:"pill_bg"`
	PillBgChecked string `yaml:"pill_bg_checked"`
	Accent        string `yaml:"accent"`
	AccentSoft    string `yaml:"accent_soft"`
	Muted         string `yaml:"muted"`
}

// DefaultTheme is a minimalist light theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    "#f5f5f8",
		Surface:       "#ffffff",
		Foreground:    "#111827",
		Border:        "#e5e7eb",
		PillBg:        "#f3f4f6",
		PillBgChecked: "#111827",
		Accent:        "#6366f1",
		AccentSoft:    "#eef2ff",
		Muted:         "#6b7280",
	}
}

// Merge returns a copy of th with empty colours taken from other.
func (th Theme) Merge(other Theme) Theme {
	pick := func(a, b string) string {
		if a == "" {
			return b
		}
		return a
	}
	return Theme{
		Background:    pick(th.Background, other.Background),
		Surface:       pick(th.Surface, other.Surface),
		Foreground:    pick(th.Foreground, other.Foreground),
		Border:        pick(th.Border, other.Border),
		PillBg:        pick(th.PillBg, other.PillBg),
		PillBgChecked: pick(th.PillBgChecked, other.PillBgChecked),
		Accent:        pick(th.Accent, other.Accent),
		AccentSoft:    pick(th.AccentSoft, other.AccentSoft),
		Muted:         pick(th.Muted, other.Muted),
	}
}

// Stylesheet returns the control cosmetics for one figure. Rules are scoped
// to the figure and never touch the display of views.
func (th Theme) Stylesheet(scope selector.Scope) *douceuradapter.CSSStyles {
	fig := scope.Selector()
	sheet := douceuradapter.New()
	add := func(sel string, kv ...string) {
		sheet.AddRule([]string{sel}, style.Decl(kv...))
	}
	add(fig,
		"display", "grid",
		"gap", "1rem",
		"color", th.Foreground)
	add(fig+" .cssplt-controls",
		"display", "flex",
		"flex-direction", "column",
		"gap", "0.5rem")
	add(fig+" .cssplt-control",
		"display", "flex",
		"flex-wrap", "wrap",
		"gap", "0.25rem",
		"align-items", "center")
	add(fig+" .cssplt-control-title",
		"color", th.Muted,
		"font-size", "0.85rem",
		"margin-right", "0.25rem")
	add(fig+" .cssplt-input",
		"position", "absolute",
		"opacity", "0",
		"pointer-events", "none")
	add(fig+" .cssplt-pill",
		"display", "inline-block",
		"padding", "0.2rem 0.6rem",
		"border-radius", "999px",
		"border", "1px solid "+th.Border,
		"background", th.PillBg,
		"font-size", "0.85rem",
		"cursor", "pointer",
		"user-select", "none")
	add(fig+" .cssplt-input:checked + .cssplt-pill",
		"background", th.PillBgChecked,
		"color", th.Surface,
		"border-color", th.PillBgChecked)
	add(fig+" .cssplt-input:focus + .cssplt-pill",
		"outline", "2px solid "+th.Accent,
		"outline-offset", "1px")
	add(fig+" .cssplt-note",
		"padding", "1rem",
		"background", th.AccentSoft,
		"color", th.Muted,
		"border-radius", "0.5rem")
	return sheet
}
