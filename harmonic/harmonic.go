// Package harmonic extends the skin-effect factor to conductor currents that
// are not pure sinusoids.
//
// One or more whole periods of the current are transformed to a one-sided
// power spectrum. Each spectral line contributes the skin-effect factor of
// its own frequency, weighted by its share of the total current power:
//
//	δ_eff = Σ P_k·δ(f_k) / Σ P_k
//
// The DC line contributes the saturated value 1/4.
package harmonic

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-inductance/skin"
)

// Errors returned by Analysis.
var (
	ErrInvalidSampleRate = errors.New("harmonic: sample rate must be positive")
	ErrInvalidLength     = errors.New("harmonic: sample count must be a power of two >= 2")
	ErrNoCurrent         = errors.New("harmonic: waveform carries no current")
)

// Line is one bin of a one-sided power spectrum.
type Line struct {
	Frequency float64 // Hz
	Power     float64 // arbitrary units, comparable across lines
}

// Analysis describes the conductor and sampling used to evaluate a current
// waveform.
type Analysis struct {
	SampleRate   float64 // Hz
	Conductivity float64 // S/m
	Diameter     float64 // m

	// MinPowerRatio drops lines weaker than this fraction of the strongest
	// line. Zero keeps every line.
	MinPowerRatio float64

	// SkinOptions are passed on to skin.Factor.
	SkinOptions []skin.Option
}

// Validate checks the sampling parameters. Conductor parameters are checked
// by skin.Factor.
func (a *Analysis) Validate() error {
	if !(a.SampleRate > 0) || math.IsInf(a.SampleRate, 0) {
		return ErrInvalidSampleRate
	}

	return nil
}

// Spectrum returns the one-sided power spectrum of current. len(current)
// must be a power of two and should span an integer number of periods.
func (a *Analysis) Spectrum(current []float64) ([]Line, error) {
	err := a.Validate()
	if err != nil {
		return nil, err
	}

	n := len(current)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("harmonic: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range current {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("harmonic: fft: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k := 0; k < half; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	binHz := a.SampleRate / float64(n)
	lines := make([]Line, half)

	for k := range lines {
		p := power[k]
		// Fold negative frequencies onto their positive twin.
		if k != 0 && k != n/2 {
			p *= 2
		}

		lines[k] = Line{Frequency: float64(k) * binHz, Power: p}
	}

	return lines, nil
}

// EffectiveFactor returns the power-weighted skin-effect factor of current.
func (a *Analysis) EffectiveFactor(current []float64) (float64, error) {
	lines, err := a.Spectrum(current)
	if err != nil {
		return 0, err
	}

	return a.weigh(lines)
}

func (a *Analysis) weigh(lines []Line) (float64, error) {
	peak := 0.0
	for _, ln := range lines {
		peak = math.Max(peak, ln.Power)
	}

	if peak == 0 || math.IsNaN(peak) {
		return 0, ErrNoCurrent
	}

	threshold := peak * a.MinPowerRatio

	var sum, weighted float64

	for _, ln := range lines {
		if ln.Power <= 0 || ln.Power < threshold {
			continue
		}

		delta, err := skin.Factor(ln.Frequency, a.Conductivity, a.Diameter, a.SkinOptions...)
		if err != nil {
			return 0, err
		}

		sum += ln.Power
		weighted += ln.Power * delta
	}

	return weighted / sum, nil
}
