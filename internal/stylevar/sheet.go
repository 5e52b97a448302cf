// Package stylevar keeps named style variables for mounted template instances.
//
// A Sheet holds a base stylesheet plus one override set per scope. Reads
// resolve the scope's override first and fall back to the base, the way a
// custom property cascades in a document.
package stylevar

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jansmrcka/vitrine/internal/scheme"
)

// Scope identifies one mounted template instance.
type Scope string

// VarName returns the custom property name for a role.
func VarName(r scheme.Role) string {
	return "--" + string(r)
}

// RoleVars converts a scheme's roles into variable name/value pairs.
func RoleVars(s scheme.ColorScheme) map[string]string {
	vars := make(map[string]string, len(scheme.Roles()))
	for r, v := range s.Vars() {
		vars[VarName(r)] = v
	}
	return vars
}

// Sheet is safe for concurrent use.
type Sheet struct {
	mu     sync.RWMutex
	base   map[string]string
	scopes map[Scope]map[string]string
}

// NewSheet creates a sheet over base.
func NewSheet(base map[string]string) *Sheet {
	return &Sheet{
		base:   copyVars(base),
		scopes: make(map[Scope]map[string]string),
	}
}

// SetBase replaces the base stylesheet.
func (s *Sheet) SetBase(base map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = copyVars(base)
}

// Publish replaces every override of scope with vars. Keys the scope
// published before and that are absent from vars no longer apply.
func (s *Sheet) Publish(scope Scope, vars map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scopes[scope] = copyVars(vars)
}

// Retract drops every override of scope. Other scopes are untouched.
func (s *Sheet) Retract(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scopes, scope)
}

// Lookup resolves name for scope.
func (s *Sheet) Lookup(scope Scope, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.scopes[scope][name]; ok {
		return v, true
	}
	v, ok := s.base[name]
	return v, ok
}

// Overrides returns a copy of the variables scope currently publishes.
func (s *Sheet) Overrides(scope Scope) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyVars(s.scopes[scope])
}

// Resolved returns the base merged with the scope's overrides.
func (s *Sheet) Resolved(scope Scope) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := copyVars(s.base)
	for k, v := range s.scopes[scope] {
		out[k] = v
	}
	return out
}

// Scopes lists scopes with published overrides, sorted.
func (s *Sheet) Scopes() []Scope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Scope, 0, len(s.scopes))
	for sc := range s.scopes {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CSS renders the resolved variables of scope as a rule for selector.
// Role variables come first in role order, anything else after by name.
func (s *Sheet) CSS(scope Scope, selector string) string {
	return FormatCSS(selector, s.Resolved(scope))
}

// FormatCSS renders vars as a single CSS rule.
func FormatCSS(selector string, vars map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	for _, name := range orderedNames(vars) {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")
	return b.String()
}

func orderedNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	known := make(map[string]bool)
	for _, r := range scheme.Roles() {
		n := VarName(r)
		known[n] = true
		if _, ok := vars[n]; ok {
			names = append(names, n)
		}
	}
	var rest []string
	for n := range vars {
		if !known[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func copyVars(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
