// Package theme holds the palette and ttk styles shared by the views.
package theme

import (
	tk "modernc.org/tk9.0"
)

// Palette defines the semantic colors used across widgets.
type Palette struct {
	AppBg     string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var (
	light = Palette{
		AppBg:     "#f7f9fb",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
)

var darkMode bool

// CurrentPalette returns colors for the active mode.
func CurrentPalette() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles activates the base theme and configures the semantic styles.
func InitStyles(useDark bool) {
	darkMode = useDark
	p := CurrentPalette()
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StylePrimaryButton, tk.Background(p.Primary), tk.Foreground("white"),
		tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge"))
	tk.StyleConfigure(StyleDangerButton, tk.Background(p.Danger), tk.Foreground("white"),
		tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge"))
}
