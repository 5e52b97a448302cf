// Package lint checks catalog schemes for readable text contrast.
//
// Only hex tokens are understood. Anything else (named colors, hsl(),
// var() references) is reported as skipped rather than failed.
package lint

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jansmrcka/vitrine/internal/scheme"
)

// DefaultMinRatio is the WCAG AA threshold for body text.
const DefaultMinRatio = 4.5

// Pair is a surface role and the text role drawn on it.
type Pair struct {
	Surface, Text scheme.Role
}

// Pairs lists the surface/text combinations every scheme is expected to
// keep legible.
var Pairs = []Pair{
	{scheme.RoleBackground, scheme.RoleForeground},
	{scheme.RolePrimary, scheme.RolePrimaryForeground},
	{scheme.RoleSecondary, scheme.RoleSecondaryForeground},
	{scheme.RoleAccent, scheme.RoleAccentForeground},
	{scheme.RoleMuted, scheme.RoleMutedForeground},
	{scheme.RoleCard, scheme.RoleCardForeground},
}

// Finding is the result for one pair of one scheme.
type Finding struct {
	Template string
	Scheme   string
	Pair     Pair
	Ratio    float64

	// Err is set when a token could not be parsed; Ratio is then zero.
	Err error
}

// Skipped reports whether the pair could not be measured.
func (f Finding) Skipped() bool { return f.Err != nil }

// Report collects findings for a catalog.
type Report struct {
	MinRatio float64
	Findings []Finding
}

// Failures returns the measured findings below MinRatio.
func (r Report) Failures() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if !f.Skipped() && f.Ratio < r.MinRatio {
			out = append(out, f)
		}
	}
	return out
}

// Skipped returns the findings that could not be measured.
func (r Report) Skipped() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Skipped() {
			out = append(out, f)
		}
	}
	return out
}

// OK reports whether no measured pair fell below the threshold.
func (r Report) OK() bool { return len(r.Failures()) == 0 }

// Catalog checks every scheme of every template in c. A non-positive minRatio
// selects DefaultMinRatio.
func Catalog(c scheme.Catalog, minRatio float64) Report {
	if minRatio <= 0 {
		minRatio = DefaultMinRatio
	}
	r := Report{MinRatio: minRatio}
	for _, def := range c.Definitions() {
		for _, cs := range def.Schemes {
			r.Findings = append(r.Findings, Scheme(def.ID, cs)...)
		}
	}
	return r
}

// Scheme measures every pair of cs.
func Scheme(template string, cs scheme.ColorScheme) []Finding {
	out := make([]Finding, 0, len(Pairs))
	for _, p := range Pairs {
		f := Finding{Template: template, Scheme: cs.ID, Pair: p}
		f.Ratio, f.Err = Contrast(cs.Value(p.Surface), cs.Value(p.Text))
		out = append(out, f)
	}
	return out
}

// Contrast returns the WCAG 2 contrast ratio of two hex colors, from 1 to 21.
func Contrast(a, b string) (float64, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", b, err)
	}
	la, lb := luminance(ca), luminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
