package scheme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a template definition file. A file may
// hold one theme at the top level or several under "themes".
type catalogFile struct {
	ThemeDefinition `yaml:",inline"`
	Themes          []ThemeDefinition `yaml:"themes"`
}

// LoadFile reads theme definitions from a YAML file and validates them.
func LoadFile(path string) ([]ThemeDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes theme definitions from YAML. Unknown fields are rejected so
// a misspelled role name cannot silently leave a role empty.
func Parse(data []byte) ([]ThemeDefinition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	defs := f.Themes
	if f.ID != "" || len(f.Schemes) > 0 {
		defs = append([]ThemeDefinition{f.ThemeDefinition}, defs...)
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, in name order, into a
// catalog. A missing directory yields an empty catalog.
func LoadDir(dir string) (Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewCatalog()
		}
		return Catalog{}, fmt.Errorf("reading catalog dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var all []ThemeDefinition
	for _, name := range names {
		defs, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return Catalog{}, err
		}
		all = append(all, defs...)
	}
	return NewCatalog(all...)
}
