package inductance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSweep is returned for unusable frequency sweeps.
var ErrInvalidSweep = errors.New("inductance: invalid frequency sweep")

// FrequencySweep describes a frequency grid from Start to Stop inclusive.
type FrequencySweep struct {
	Start  float64 // Hz
	Stop   float64 // Hz
	Points int
	Log    bool // logarithmic spacing, requires Start > 0
}

// Validate checks that the grid is well formed.
func (s FrequencySweep) Validate() error {
	if math.IsNaN(s.Start) || math.IsInf(s.Start, 0) || s.Start < 0 {
		return fmt.Errorf("%w: start %v Hz", ErrInvalidSweep, s.Start)
	}

	if math.IsNaN(s.Stop) || math.IsInf(s.Stop, 0) || s.Stop < s.Start {
		return fmt.Errorf("%w: stop %v Hz below start %v Hz", ErrInvalidSweep, s.Stop, s.Start)
	}

	if s.Points < 1 {
		return fmt.Errorf("%w: %d points", ErrInvalidSweep, s.Points)
	}

	if s.Points > 1 && s.Stop == s.Start {
		return fmt.Errorf("%w: %d points on an empty range", ErrInvalidSweep, s.Points)
	}

	if s.Log && s.Start == 0 {
		return fmt.Errorf("%w: logarithmic sweep starting at 0 Hz", ErrInvalidSweep)
	}

	return nil
}

// Frequencies returns the grid.
func (s FrequencySweep) Frequencies() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, s.Points)
	if s.Points == 1 {
		out[0] = s.Start
		return out, nil
	}

	last := float64(s.Points - 1)

	if s.Log {
		lnStart := math.Log(s.Start)
		step := (math.Log(s.Stop) - lnStart) / last

		for i := range out {
			out[i] = math.Exp(lnStart + step*float64(i))
		}
	} else {
		step := (s.Stop - s.Start) / last

		for i := range out {
			out[i] = s.Start + step*float64(i)
		}
	}

	// Pin the end point against rounding.
	out[len(out)-1] = s.Stop

	return out, nil
}

// Point is one sweep result.
type Point struct {
	Frequency  float64 // Hz
	Inductance float64 // H
	SkinFactor float64
}

// Sweep evaluates c at every frequency of s. The first failing frequency
// stops the sweep; the points computed so far are returned with the error.
func Sweep(c FrequencyDependent, s FrequencySweep) ([]Point, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}

	out := make([]Point, 0, len(freqs))

	for _, f := range freqs {
		at := c.AtFrequency(f)

		delta, err := at.SkinFactor()
		if err != nil {
			return out, fmt.Errorf("at %v Hz: %w", f, err)
		}

		L, err := at.Inductance()
		if err != nil {
			return out, fmt.Errorf("at %v Hz: %w", f, err)
		}

		out = append(out, Point{Frequency: f, Inductance: L, SkinFactor: delta})
	}

	return out, nil
}

// Inductances returns the inductance column of points.
func Inductances(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Inductance
	}

	return out
}
