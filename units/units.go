// Package units converts lengths, frequencies and inductances between the
// SI base unit and the engineering prefixes offered at the user interface.
package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cast"
)

// ErrUnknownUnit is returned for unit symbols that are not tabulated.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Kind groups units measuring the same quantity.
type Kind int

const (
	Dimensionless Kind = iota
	Length
	Frequency
	Inductance
	Conductivity
)

// Unit is a symbol with its factor relative to the SI base unit: a value v
// expressed in the unit equals v*Scale in SI.
type Unit struct {
	Kind   Kind
	Symbol string
	Scale  float64
}

// Base units.
var (
	Metre     = Unit{Length, "m", 1}
	Hertz     = Unit{Frequency, "Hz", 1}
	Henry     = Unit{Inductance, "H", 1}
	SiemensPM = Unit{Conductivity, "S/m", 1}
	One       = Unit{Dimensionless, "", 1}
)

var tables = map[Kind][]Unit{
	Length: {
		Metre,
		{Length, "cm", 1e-2},
		{Length, "mm", 1e-3},
	},
	Frequency: {
		Hertz,
		{Frequency, "kHz", 1e3},
		{Frequency, "MHz", 1e6},
		{Frequency, "GHz", 1e9},
	},
	Inductance: {
		Henry,
		{Inductance, "mH", 1e-3},
		{Inductance, "µH", 1e-6},
		{Inductance, "nH", 1e-9},
	},
	Conductivity: {
		SiemensPM,
		{Conductivity, "MS/m", 1e6},
	},
	Dimensionless: {One},
}

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Dimensionless:
		return "dimensionless"
	case Length:
		return "length"
	case Frequency:
		return "frequency"
	case Inductance:
		return "inductance"
	case Conductivity:
		return "conductivity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Units returns the symbols known for kind, base unit first.
func Units(kind Kind) []Unit {
	return append([]Unit(nil), tables[kind]...)
}

// Parse resolves symbol within kind. Matching is exact except that "u" is
// accepted for "µ" and an empty symbol selects the base unit.
func Parse(kind Kind, symbol string) (Unit, error) {
	s := strings.TrimSpace(symbol)
	s = strings.Replace(s, "u", "µ", 1)

	list, ok := tables[kind]
	if !ok {
		return Unit{}, fmt.Errorf("%w: kind %v", ErrUnknownUnit, kind)
	}

	if s == "" {
		return list[0], nil
	}

	for _, u := range list {
		if u.Symbol == s {
			return u, nil
		}
	}

	return Unit{}, fmt.Errorf("%w: %q is not a %v unit", ErrUnknownUnit, symbol, kind)
}

// ParseLength is Parse(Length, symbol).
func ParseLength(symbol string) (Unit, error) { return Parse(Length, symbol) }

// ParseFrequency is Parse(Frequency, symbol).
func ParseFrequency(symbol string) (Unit, error) { return Parse(Frequency, symbol) }

// ParseInductance is Parse(Inductance, symbol).
func ParseInductance(symbol string) (Unit, error) { return Parse(Inductance, symbol) }

// ToSI converts v expressed in u to the base unit.
func (u Unit) ToSI(v float64) float64 { return v * u.Scale }

// FromSI converts v from the base unit to u.
func (u Unit) FromSI(v float64) float64 { return v / u.Scale }

// String returns the unit symbol.
func (u Unit) String() string { return u.Symbol }

// FromSIAll converts every SI value in src to u and writes the result into
// dst, which is grown if needed.
func (u Unit) FromSIAll(dst, src []float64) []float64 {
	return ScaleAll(dst, src, 1/u.Scale)
}

// ScaleAll writes src*scale into dst, growing dst if needed.
func ScaleAll(dst, src []float64, scale float64) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}

	dst = dst[:len(src)]
	vecmath.ScaleBlock(dst, src, scale)

	return dst
}

// ParseValue reads a quantity such as "5 mm", "2.5kHz" or "1e-3" and returns
// it in the base unit of kind. A bare number is taken as SI.
func ParseValue(kind Kind, s string) (float64, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndexFunc(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.'
	})

	num, symbol := s[:i+1], s[i+1:]

	v, err := cast.ToFloat64E(strings.TrimSpace(num))
	if err != nil || num == "" {
		return 0, fmt.Errorf("%w: %q has no numeric value", ErrUnknownUnit, s)
	}

	u, err := Parse(kind, symbol)
	if err != nil {
		return 0, err
	}

	return u.ToSI(v), nil
}
