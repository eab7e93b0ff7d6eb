package material

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProperty is returned when an override carries a negative or
// zero property value.
var ErrInvalidProperty = errors.New("material: invalid property value")

type fileEntry struct {
	Name         string   `yaml:"name"`
	Conductivity *float64 `yaml:"conductivity"`
	Permeability *float64 `yaml:"permeability"`
	Permittivity *float64 `yaml:"permittivity"`
	Source       string   `yaml:"source"`
}

type file struct {
	Materials []fileEntry `yaml:"materials"`
}

// LoadTable reads YAML overrides from r and applies them on top of base.
// Only the properties present in the document change:
//
//	materials:
//	  - name: Copper
//	    conductivity: 5.8e7
//	  - name: Iron
//	    permeability: 200
func LoadTable(r io.Reader, base Table) (Table, error) {
	var doc file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("material: decode overrides: %w", err)
	}

	out := base

	for _, e := range doc.Materials {
		id, err := Parse(e.Name)
		if err != nil {
			return base, err
		}

		m, err := out.Lookup(id)
		if err != nil {
			return base, err
		}

		if e.Conductivity != nil {
			if *e.Conductivity < 0 {
				return base, fmt.Errorf("%w: %s conductivity %v", ErrInvalidProperty, m.Name, *e.Conductivity)
			}

			m.Conductivity = *e.Conductivity
		}

		if e.Permeability != nil {
			if *e.Permeability <= 0 {
				return base, fmt.Errorf("%w: %s permeability %v", ErrInvalidProperty, m.Name, *e.Permeability)
			}

			m.Permeability = *e.Permeability
		}

		if e.Permittivity != nil {
			if *e.Permittivity <= 0 {
				return base, fmt.Errorf("%w: %s permittivity %v", ErrInvalidProperty, m.Name, *e.Permittivity)
			}

			m.Permittivity = *e.Permittivity
		}

		if e.Source != "" {
			m.Source = e.Source
		}

		if out, err = out.With(m); err != nil {
			return base, err
		}
	}

	return out, nil
}

// LoadTableFile is LoadTable on the named file.
func LoadTableFile(name string, base Table) (Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return base, err
	}
	defer f.Close()

	return LoadTable(f, base)
}
