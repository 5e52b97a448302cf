// Package scheme describes the color schemes each template ships with.
//
// A ThemeDefinition belongs to one visual template and lists the
// interchangeable ColorSchemes it supports. Values are opaque color tokens;
// nothing in this package interprets them.
package scheme

import (
	"errors"
	"fmt"
	"strings"
)

// Role names one semantic color slot.
type Role string

const (
	RolePrimary             Role = "primary"
	RolePrimaryForeground   Role = "primary-foreground"
	RoleSecondary           Role = "secondary"
	RoleSecondaryForeground Role = "secondary-foreground"
	RoleAccent              Role = "accent"
	RoleAccentForeground    Role = "accent-foreground"
	RoleBackground          Role = "background"
	RoleForeground          Role = "foreground"
	RoleMuted               Role = "muted"
	RoleMutedForeground     Role = "muted-foreground"
	RoleCard                Role = "card"
	RoleCardForeground      Role = "card-foreground"
	RoleBorder              Role = "border"
	RoleRing                Role = "ring"
)

var roles = [...]Role{
	RolePrimary, RolePrimaryForeground,
	RoleSecondary, RoleSecondaryForeground,
	RoleAccent, RoleAccentForeground,
	RoleBackground, RoleForeground,
	RoleMuted, RoleMutedForeground,
	RoleCard, RoleCardForeground,
	RoleBorder, RoleRing,
}

// Roles returns every semantic role in a stable order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles[:])
	return out
}

// Definition errors.
var (
	ErrNoSchemes       = errors.New("theme has no color schemes")
	ErrDuplicateScheme = errors.New("duplicate scheme id")
	ErrUnknownDefault  = errors.New("default scheme id is not a member scheme")
	ErrMissingRole     = errors.New("color scheme is missing a role")
	ErrEmptyID         = errors.New("empty id")
)

// ColorScheme is a named, complete set of semantic color assignments.
type ColorScheme struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Primary             string `yaml:"primary"`
	PrimaryForeground   string `yaml:"primary-foreground"`
	Secondary           string `yaml:"secondary"`
	SecondaryForeground string `yaml:"secondary-foreground"`
	Accent              string `yaml:"accent"`
	AccentForeground    string `yaml:"accent-foreground"`
	Background          string `yaml:"background"`
	Foreground          string `yaml:"foreground"`
	Muted               string `yaml:"muted"`
	MutedForeground     string `yaml:"muted-foreground"`
	Card                string `yaml:"card"`
	CardForeground      string `yaml:"card-foreground"`
	Border              string `yaml:"border"`
	Ring                string `yaml:"ring"`
}

// Value returns the token assigned to role, or "" for an unknown role.
func (c ColorScheme) Value(r Role) string {
	switch r {
	case RolePrimary:
		return c.Primary
	case RolePrimaryForeground:
		return c.PrimaryForeground
	case RoleSecondary:
		return c.Secondary
	case RoleSecondaryForeground:
		return c.SecondaryForeground
	case RoleAccent:
		return c.Accent
	case RoleAccentForeground:
		return c.AccentForeground
	case RoleBackground:
		return c.Background
	case RoleForeground:
		return c.Foreground
	case RoleMuted:
		return c.Muted
	case RoleMutedForeground:
		return c.MutedForeground
	case RoleCard:
		return c.Card
	case RoleCardForeground:
		return c.CardForeground
	case RoleBorder:
		return c.Border
	case RoleRing:
		return c.Ring
	}
	return ""
}

// Vars returns all roles of the scheme. The map always has one entry per role.
func (c ColorScheme) Vars() map[Role]string {
	out := make(map[Role]string, len(roles))
	for _, r := range roles {
		out[r] = c.Value(r)
	}
	return out
}

// Missing lists the roles that have no value.
func (c ColorScheme) Missing() []Role {
	var missing []Role
	for _, r := range roles {
		if strings.TrimSpace(c.Value(r)) == "" {
			missing = append(missing, r)
		}
	}
	return missing
}

// ThemeDefinition is the set of schemes bound to one visual template.
type ThemeDefinition struct {
	ID              string        `yaml:"id"`
	Name            string        `yaml:"name"`
	Description     string        `yaml:"description"`
	Schemes         []ColorScheme `yaml:"schemes"`
	DefaultSchemeID string        `yaml:"default"`
}

// Validate reports the first structural problem in the definition.
func (d ThemeDefinition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("theme: %w", ErrEmptyID)
	}
	if err := d.CheckSchemes(); err != nil {
		return err
	}
	for _, s := range d.Schemes {
		if s.ID == d.DefaultSchemeID {
			return nil
		}
	}
	return fmt.Errorf("theme %q: %w: %q", d.ID, ErrUnknownDefault, d.DefaultSchemeID)
}

// CheckSchemes reports the first problem among the member schemes: none at
// all, an empty or duplicate id, or a missing role. Unlike Validate it
// accepts a default id that does not resolve.
func (d ThemeDefinition) CheckSchemes() error {
	if len(d.Schemes) == 0 {
		return fmt.Errorf("theme %q: %w", d.ID, ErrNoSchemes)
	}

	seen := make(map[string]bool, len(d.Schemes))
	for _, s := range d.Schemes {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("theme %q: scheme: %w", d.ID, ErrEmptyID)
		}
		if seen[s.ID] {
			return fmt.Errorf("theme %q: %w: %s", d.ID, ErrDuplicateScheme, s.ID)
		}
		seen[s.ID] = true
		if missing := s.Missing(); len(missing) > 0 {
			return fmt.Errorf("theme %q scheme %q: %w: %s", d.ID, s.ID, ErrMissingRole, missing[0])
		}
	}
	return nil
}

// Scheme looks up a member scheme by id.
func (d ThemeDefinition) Scheme(id string) (ColorScheme, bool) {
	for _, s := range d.Schemes {
		if s.ID == id {
			return s, true
		}
	}
	return ColorScheme{}, false
}

// InitialScheme returns the default scheme, falling back to the first one
// when the default id does not resolve.
func (d ThemeDefinition) InitialScheme() (ColorScheme, error) {
	if s, ok := d.Scheme(d.DefaultSchemeID); ok {
		return s, nil
	}
	if len(d.Schemes) == 0 {
		return ColorScheme{}, fmt.Errorf("theme %q: %w", d.ID, ErrNoSchemes)
	}
	return d.Schemes[0], nil
}

// SchemeList returns a copy of the member schemes.
func (d ThemeDefinition) SchemeList() []ColorScheme {
	out := make([]ColorScheme, len(d.Schemes))
	copy(out, d.Schemes)
	return out
}

// Index returns the position of the scheme with id, or -1.
func (d ThemeDefinition) Index(id string) int {
	for i, s := range d.Schemes {
		if s.ID == id {
			return i
		}
	}
	return -1
}
