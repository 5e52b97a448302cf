package theme

import (
	"github.com/jansmrcka/vitrine/internal/mode"
	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
)

// Theme defines color values for the application chrome in one display
// mode. All values are hex color strings.
// This package has no lipgloss dependency; ui/styles.go bridges theme to lipgloss.
type Theme struct {
	Bg string
	Fg string

	// Header and scheme chips
	HeaderBg   string
	ChipFg     string
	SelectedBg string
	SelectedFg string

	// Mode toggle button
	ToggleBg string
	ToggleFg string

	// Chrome
	BorderFg    string
	StatusBarBg string
	StatusBarFg string
	HelpKeyFg   string
	HelpDescFg  string

	// Accent
	AccentFg string

	// Chroma syntax theme name
	ChromaStyle string

	// Base is the stylesheet a template falls back to for any role it
	// does not override.
	Base scheme.ColorScheme
}

// BaseVars returns the base stylesheet as style variables.
func (t Theme) BaseVars() map[string]string {
	return stylevar.RoleVars(t.Base)
}

// Themes is the registry of built-in chrome themes, one per display mode.
var Themes = map[mode.Mode]Theme{
	mode.Dark:  DarkTheme(),
	mode.Light: LightTheme(),
}

// ForMode returns the chrome theme for m. Unknown modes get the light theme.
func ForMode(m mode.Mode) Theme {
	if th, ok := Themes[m]; ok {
		return th
	}
	return LightTheme()
}

// DarkTheme returns a GitHub Dark-inspired theme.
func DarkTheme() Theme {
	return Theme{
		Bg: "#0d1117",
		Fg: "#c9d1d9",

		HeaderBg:   "#161b22",
		ChipFg:     "#8b949e",
		SelectedBg: "#1f6feb",
		SelectedFg: "#f0f6fc",

		ToggleBg: "#30363d",
		ToggleFg: "#f0f6fc",

		BorderFg:    "#30363d",
		StatusBarBg: "#161b22",
		StatusBarFg: "#8b949e",
		HelpKeyFg:   "#58a6ff",
		HelpDescFg:  "#8b949e",

		AccentFg: "#58a6ff",

		ChromaStyle: "github-dark",

		Base: scheme.ColorScheme{
			ID:                  "base-dark",
			Name:                "Base (dark)",
			Primary:             "#58a6ff",
			PrimaryForeground:   "#0d1117",
			Secondary:           "#21262d",
			SecondaryForeground: "#c9d1d9",
			Accent:              "#d2a8ff",
			AccentForeground:    "#0d1117",
			Background:          "#0d1117",
			Foreground:          "#c9d1d9",
			Muted:               "#161b22",
			MutedForeground:     "#8b949e",
			Card:                "#161b22",
			CardForeground:      "#f0f6fc",
			Border:              "#30363d",
			Ring:                "#1f6feb",
		},
	}
}

// LightTheme returns a GitHub Light-inspired theme.
func LightTheme() Theme {
	return Theme{
		Bg: "#ffffff",
		Fg: "#1f2328",

		HeaderBg:   "#f6f8fa",
		ChipFg:     "#656d76",
		SelectedBg: "#0969da",
		SelectedFg: "#ffffff",

		ToggleBg: "#d0d7de",
		ToggleFg: "#1f2328",

		BorderFg:    "#d0d7de",
		StatusBarBg: "#f6f8fa",
		StatusBarFg: "#656d76",
		HelpKeyFg:   "#0969da",
		HelpDescFg:  "#656d76",

		AccentFg: "#0969da",

		ChromaStyle: "github",

		Base: scheme.ColorScheme{
			ID:                  "base-light",
			Name:                "Base (light)",
			Primary:             "#0969da",
			PrimaryForeground:   "#ffffff",
			Secondary:           "#eaeef2",
			SecondaryForeground: "#1f2328",
			Accent:              "#8250df",
			AccentForeground:    "#ffffff",
			Background:          "#ffffff",
			Foreground:          "#1f2328",
			Muted:               "#f6f8fa",
			MutedForeground:     "#656d76",
			Card:                "#f6f8fa",
			CardForeground:      "#1f2328",
			Border:              "#d0d7de",
			Ring:                "#0969da",
		},
	}
}
