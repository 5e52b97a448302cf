package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/vitrine/internal/scheme"
	"github.com/jansmrcka/vitrine/internal/stylevar"
	"github.com/jansmrcka/vitrine/internal/theme"
)

// Styles holds the chrome styles derived from a theme.
type Styles struct {
	Canvas lipgloss.Style

	// Header
	HeaderBar    lipgloss.Style
	Brand        lipgloss.Style
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Toggle       lipgloss.Style

	// Chrome
	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Canvas: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Bg)).
			Foreground(lipgloss.Color(t.Fg)),

		HeaderBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.Fg)),
		Brand: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.AccentFg)).
			Bold(true),
		Chip: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.ChipFg)),
		ChipSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectedBg)).
			Foreground(lipgloss.Color(t.SelectedFg)).
			Bold(true),
		Toggle: lipgloss.NewStyle().
			Background(lipgloss.Color(t.ToggleBg)).
			Foreground(lipgloss.Color(t.ToggleFg)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBarBg)).
			Foreground(lipgloss.Color(t.StatusBarFg)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpKeyFg)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpDescFg)),
	}
}

// helpStyles adapts the chrome styles to the help bar.
func (s Styles) helpStyles() help.Styles {
	sep := s.HelpDesc
	return help.Styles{
		ShortKey:       s.HelpKey,
		ShortDesc:      s.HelpDesc,
		ShortSeparator: sep,
		Ellipsis:       sep,
		FullKey:        s.HelpKey,
		FullDesc:       s.HelpDesc,
		FullSeparator:  sep,
	}
}

// pageStyles renders a template preview from its resolved style variables.
type pageStyles struct {
	Page      lipgloss.Style
	Nav       lipgloss.Style
	Hero      lipgloss.Style
	HeroTitle lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Muted     lipgloss.Style
	Footer    lipgloss.Style
}

// The page canvas follows the display mode; every section on it follows the
// template's scheme.
func newPageStyles(vars map[string]string, canvas scheme.ColorScheme) pageStyles {
	c := func(r scheme.Role) lipgloss.Color {
		return lipgloss.Color(vars[stylevar.VarName(r)])
	}
	bg := lipgloss.Color(canvas.Background)
	return pageStyles{
		Page: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(canvas.Foreground)),
		Nav: lipgloss.NewStyle().
			Background(c(scheme.RoleBackground)).
			Foreground(c(scheme.RoleForeground)).
			Bold(true),
		Hero: lipgloss.NewStyle().
			Background(c(scheme.RolePrimary)).
			Foreground(c(scheme.RolePrimaryForeground)),
		HeroTitle: lipgloss.NewStyle().
			Background(c(scheme.RolePrimary)).
			Foreground(c(scheme.RolePrimaryForeground)).
			Bold(true),
		Primary: lipgloss.NewStyle().
			Background(c(scheme.RoleAccent)).
			Foreground(c(scheme.RoleAccentForeground)).
			Bold(true).
			Padding(0, 2),
		Secondary: lipgloss.NewStyle().
			Background(c(scheme.RoleSecondary)).
			Foreground(c(scheme.RoleSecondaryForeground)).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Background(c(scheme.RoleCard)).
			Foreground(c(scheme.RoleCardForeground)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c(scheme.RoleBorder)).
			BorderBackground(bg).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Background(c(scheme.RoleCard)).
			Foreground(c(scheme.RoleRing)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Background(c(scheme.RoleCard)).
			Foreground(c(scheme.RoleMutedForeground)),
		Footer: lipgloss.NewStyle().
			Background(c(scheme.RoleMuted)).
			Foreground(c(scheme.RoleMutedForeground)),
	}
}
