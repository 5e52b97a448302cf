package scheme

import (
	"errors"
	"fmt"
)

// ErrDuplicateTheme is returned when two definitions share an id.
var ErrDuplicateTheme = errors.New("duplicate theme id")

// Catalog is an ordered, read-only set of theme definitions.
type Catalog struct {
	defs  []ThemeDefinition
	index map[string]int
}

// NewCatalog validates defs and builds a catalog preserving their order.
func NewCatalog(defs ...ThemeDefinition) (Catalog, error) {
	c := Catalog{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.index[d.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateTheme, d.ID)
		}
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, cloneDefinition(d))
	}
	return c, nil
}

// Lookup returns the definition with id.
func (c Catalog) Lookup(id string) (ThemeDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return ThemeDefinition{}, false
	}
	return cloneDefinition(c.defs[i]), true
}

// Definitions returns copies of all definitions in catalog order.
func (c Catalog) Definitions() []ThemeDefinition {
	out := make([]ThemeDefinition, len(c.defs))
	for i, d := range c.defs {
		out[i] = cloneDefinition(d)
	}
	return out
}

// IDs returns the theme ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of definitions.
func (c Catalog) Len() int { return len(c.defs) }

// Merge returns a catalog with other's definitions appended. A definition in
// other replaces one with the same id in place.
func (c Catalog) Merge(other Catalog) Catalog {
	out := Catalog{index: make(map[string]int, len(c.defs)+len(other.defs))}
	for _, d := range c.defs {
		out.index[d.ID] = len(out.defs)
		out.defs = append(out.defs, d)
	}
	for _, d := range other.defs {
		if i, ok := out.index[d.ID]; ok {
			out.defs[i] = d
			continue
		}
		out.index[d.ID] = len(out.defs)
		out.defs = append(out.defs, d)
	}
	return out
}

func cloneDefinition(d ThemeDefinition) ThemeDefinition {
	d.Schemes = d.SchemeList()
	return d
}
