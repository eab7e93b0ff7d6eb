package inductance

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-inductance/skin"
)

// Errors returned by the calculators.
var (
	ErrInvalidDimension = errors.New("inductance: dimensions must be positive and finite")
	ErrInvalidWire      = errors.New("inductance: invalid conductor material or frequency")
	ErrGeometry         = errors.New("inductance: inconsistent geometry")
	ErrOutOfDomain      = errors.New("inductance: ratio outside the tabulated range")
	ErrConductorCount   = errors.New("inductance: conductor count outside the tabulated range")
	ErrInvalidCage      = errors.New("inductance: cage equivalent radius is undefined")
)

const (
	cmPerMetre  = 100
	henryPerNH  = 1e-9
	bookRefBase = "H. Hertwig: Induktivitäten. Berlin: Verlag für Radio-Foto-Kinotechnik, 1954"
)

// Calculator is implemented by every geometry.
type Calculator interface {
	// Validate reports whether the parameters are usable.
	Validate() error
	// Inductance returns the self-inductance in henry.
	Inductance() (float64, error)
	// Reference names the literature source of the formula.
	Reference() string
	// Accuracy is the stated error of the formula and its frequency regime.
	Accuracy() Accuracy
}

// FrequencyDependent is a Calculator whose result depends on the operating
// frequency through the skin effect.
type FrequencyDependent interface {
	Calculator
	// AtFrequency returns a copy operating at f Hz.
	AtFrequency(f float64) FrequencyDependent
	// SkinFactor returns the skin-effect factor δ in use.
	SkinFactor() (float64, error)
}

// Wire describes the material of a round conductor and the frequency of the
// current it carries.
type Wire struct {
	Permeability float64 // relative permeability μr
	Conductivity float64 // S/m
	Frequency    float64 // Hz, 0 for direct current

	// SkinFactor overrides the computed δ when positive, for example with a
	// harmonic.Analysis result for non-sinusoidal currents.
	SkinFactor float64
}

// CopperWire returns a non-magnetic copper conductor at DC.
func CopperWire() Wire {
	return Wire{
		Permeability: 1,
		Conductivity: skin.CopperConductivity,
	}
}

// Validate checks the material and frequency.
func (w Wire) Validate() error {
	if !positive(w.Permeability) {
		return fmt.Errorf("%w: permeability %v", ErrInvalidWire, w.Permeability)
	}

	if !positive(w.Conductivity) {
		return fmt.Errorf("%w: conductivity %v S/m", ErrInvalidWire, w.Conductivity)
	}

	if math.IsNaN(w.Frequency) || math.IsInf(w.Frequency, 0) || w.Frequency < 0 {
		return fmt.Errorf("%w: frequency %v Hz", ErrInvalidWire, w.Frequency)
	}

	if math.IsNaN(w.SkinFactor) || w.SkinFactor < 0 || w.SkinFactor > skin.DCFactor {
		return fmt.Errorf("%w: skin factor override %v", ErrInvalidWire, w.SkinFactor)
	}

	return nil
}

// delta returns δ for a conductor of diameter d metres.
func (w Wire) delta(d float64) (float64, error) {
	if w.SkinFactor > 0 {
		return w.SkinFactor, nil
	}

	v, err := skin.Factor(w.Frequency, w.Conductivity, d)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidWire, err)
	}

	return v, nil
}

// internal returns the skin-effect term μr·δ.
func (w Wire) internal(d float64) (float64, error) {
	delta, err := w.delta(d)
	if err != nil {
		return 0, err
	}

	return w.Permeability * delta, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// requirePositive returns ErrInvalidDimension naming the first value that is
// not positive and finite. names and values are paired.
func requirePositive(names []string, values ...float64) error {
	for i, v := range values {
		if !positive(v) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidDimension, names[i], v)
		}
	}

	return nil
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: result %v", ErrGeometry, v)
	}

	return nil
}
