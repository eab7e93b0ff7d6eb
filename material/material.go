// Package material holds the static material reference data used to feed the
// inductance calculators: electrical conductivity, relative permeability and
// relative permittivity.
//
// Materials are addressed by an enumerated [ID]. Names typed by a user are
// resolved once at the boundary with [Parse]; the numeric code never matches
// on display strings.
package material

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a material.
type ID int

const (
	Aluminum ID = iota
	Carbon
	Copper
	Glass
	Gold
	Iron
	Silver
	Teflon
	WaterDistilled
	WaterTap
	Air
	Alumina
	Ceramic
	FR4
	GlassEpoxy
	RO3010
	Polypropylene
	Polyethylene

	numIDs
)

// ErrUnknownMaterial is returned for names or IDs without a table entry.
var ErrUnknownMaterial = errors.New("material: unknown material")

// Material is one row of the reference table.
type Material struct {
	ID           ID
	Name         string
	Conductivity float64 // κ in S/m
	Permeability float64 // μr
	Permittivity float64 // εr
	Source       string  // manufacturer or "N/A"
}

// Table is an immutable set of materials indexed by ID. The zero value is
// empty; use DefaultTable or LoadTable.
type Table struct {
	entries []Material
}

var defaults = [numIDs]Material{
	Aluminum:       {Aluminum, "Aluminum", 2.38e7, 1.000022, 1, "N/A"},
	Carbon:         {Carbon, "Carbon (graphite)", 1.00e-2, 0.999986, 1, "N/A"},
	Copper:         {Copper, "Copper", 5.96e7, 0.999994, 1, "N/A"},
	Glass:          {Glass, "Glass", 1.00e-12, 1, 6.0, "N/A"},
	Gold:           {Gold, "Gold", 3.50e7, 0.999964, 1, "N/A"},
	Iron:           {Iron, "Iron", 1.02e7, 5000, 1, "N/A"},
	Silver:         {Silver, "Silver", 6.30e7, 0.99998, 1, "N/A"},
	Teflon:         {Teflon, "Teflon", 1.00e-15, 1, 2.1, "DuPont"},
	WaterDistilled: {WaterDistilled, "Water (distilled)", 1.00e-6, 0.999992, 80, "N/A"},
	WaterTap:       {WaterTap, "Water (tap)", 1.00e-4, 0.999992, 80, "N/A"},
	Air:            {Air, "Air", 0, 1.00000037, 1.0, "N/A"},
	Alumina:        {Alumina, "Alumina", 1e-12, 1, 9.8, "Kyocera"},
	Ceramic:        {Ceramic, "Ceramic", 1e-12, 1, 4.5, "Murata"},
	FR4:            {FR4, "FR4", 1e-14, 1, 3.4, "Various"},
	GlassEpoxy:     {GlassEpoxy, "Glass Epoxy", 1e-14, 1, 6.0, "N/A"},
	RO3010:         {RO3010, "Rogers RO3010", 1e-13, 1, 10.2, "Rogers Corporation"},
	Polypropylene:  {Polypropylene, "Polypropylene", 1e-15, 1, 2.2, "3M"},
	Polyethylene:   {Polyethylene, "Polyethylene", 1e-15, 1, 2.5, "Dow"},
}

// DefaultTable returns the built-in reference data.
func DefaultTable() Table {
	return Table{entries: append([]Material(nil), defaults[:]...)}
}

// Lookup returns the entry for id.
func (t Table) Lookup(id ID) (Material, error) {
	if id < 0 || int(id) >= len(t.entries) {
		return Material{}, fmt.Errorf("%w: id %d", ErrUnknownMaterial, int(id))
	}

	return t.entries[id], nil
}

// All returns a copy of every entry, ordered by ID.
func (t Table) All() []Material {
	return append([]Material(nil), t.entries...)
}

// Conductors returns the entries with a conductivity of at least 1 S/m.
func (t Table) Conductors() []Material {
	var out []Material
	for _, m := range t.entries {
		if m.Conductivity >= 1 {
			out = append(out, m)
		}
	}

	return out
}

// With returns a copy of t with m replacing the entry of m.ID.
func (t Table) With(m Material) (Table, error) {
	if m.ID < 0 || int(m.ID) >= len(t.entries) {
		return t, fmt.Errorf("%w: id %d", ErrUnknownMaterial, int(m.ID))
	}

	entries := append([]Material(nil), t.entries...)
	entries[m.ID] = m

	return Table{entries: entries}, nil
}

// Parse resolves a display name to an ID. Matching ignores case, surrounding
// space, and a parenthesised suffix when the bare name is unambiguous, so
// "copper", "Carbon" and "water (tap)" all resolve.
func Parse(name string) (ID, error) {
	key := normalize(name)
	if key == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownMaterial)
	}

	for _, m := range defaults {
		if normalize(m.Name) == key {
			return m.ID, nil
		}
	}

	var (
		found ID
		hits  int
	)

	for _, m := range defaults {
		if bare(normalize(m.Name)) == key {
			found = m.ID
			hits++
		}
	}

	if hits == 1 {
		return found, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// String returns the display name of id.
func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return fmt.Sprintf("ID(%d)", int(id))
	}

	return defaults[id].Name
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func bare(s string) string {
	if i := strings.Index(s, " ("); i >= 0 {
		return s[:i]
	}

	return s
}
