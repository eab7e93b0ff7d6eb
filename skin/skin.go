// Package skin approximates the skin-effect correction δ used by the
// round-conductor inductance formulas of H. Hertwig, Induktivitäten (1954).
//
// δ is the internal-inductance term of a round conductor in units of the
// conductor length. It saturates at 1/4 for direct current and falls off as
// the current is pushed towards the surface at higher frequencies:
//
//	f2 = f·κ/κ_Cu
//	δ  = min(1/4, 6.53 / (√f2 · d[cm]))
package skin

import (
	"errors"
	"fmt"
	"math"
)

const (
	// CopperConductivity is the reference conductivity κ_Cu in S/m.
	CopperConductivity = 5.96e7

	// DCFactor is δ for direct current and the upper bound for all frequencies.
	DCFactor = 0.25

	// HertwigConstant is the empirical numerator of the high-frequency
	// approximation, for f in Hz and d in cm.
	HertwigConstant = 6.53
)

// ErrDomain is returned for inputs where δ is undefined.
var ErrDomain = errors.New("skin: input outside the domain of the skin-effect factor")

// Config holds the tunable constants of the approximation.
type Config struct {
	ReferenceConductivity float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the copper-referenced configuration.
func DefaultConfig() Config {
	return Config{ReferenceConductivity: CopperConductivity}
}

// WithReferenceConductivity normalises frequencies against kappa instead of
// copper. Non-positive values are ignored.
func WithReferenceConductivity(kappa float64) Option {
	return func(cfg *Config) {
		if kappa > 0 && !math.IsInf(kappa, 0) {
			cfg.ReferenceConductivity = kappa
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Factor returns δ for frequency f in Hz, conductivity kappa in S/m and
// conductor diameter d in metres.
//
// f must be finite and non-negative, kappa and d finite and positive. Any
// other input yields an error wrapping ErrDomain; Factor never returns NaN.
func Factor(f, kappa, d float64, opts ...Option) (float64, error) {
	return applyOptions(opts).factor(f, kappa, d)
}

// Factors evaluates Factor for every frequency in freqs and writes the
// results into dst, which is grown if needed. It stops at the first invalid
// input.
func Factors(dst, freqs []float64, kappa, d float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	if cap(dst) < len(freqs) {
		dst = make([]float64, len(freqs))
	}

	dst = dst[:len(freqs)]

	for i, f := range freqs {
		v, err := cfg.factor(f, kappa, d)
		if err != nil {
			return dst[:i], err
		}

		dst[i] = v
	}

	return dst, nil
}

func (cfg Config) factor(f, kappa, d float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: frequency %v Hz", ErrDomain, f)
	}

	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return 0, fmt.Errorf("%w: conductivity %v S/m", ErrDomain, kappa)
	}

	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0, fmt.Errorf("%w: diameter %v m", ErrDomain, d)
	}

	if f == 0 {
		return DCFactor, nil
	}

	// √f2 taken factor by factor so f·κ cannot overflow; d in cm.
	den := math.Sqrt(f) * math.Sqrt(kappa/cfg.ReferenceConductivity) * d * 100

	delta := HertwigConstant / den
	if math.IsNaN(delta) {
		return 0, fmt.Errorf("%w: f=%v Hz, κ=%v S/m, d=%v m", ErrDomain, f, kappa, d)
	}

	return math.Min(DCFactor, delta), nil
}
