package inductance

import (
	"fmt"
	"strconv"
)

// Regime is the frequency range a formula is derived for.
type Regime int

const (
	// AnyFrequency formulas include the skin effect or do not depend on it.
	AnyFrequency Regime = iota
	// LowFrequency formulas assume uniform current density.
	LowFrequency
	// HighFrequency formulas assume the current flows on the surface.
	HighFrequency
)

func (r Regime) String() string {
	switch r {
	case AnyFrequency:
		return "any frequency"
	case LowFrequency:
		return "low frequency"
	case HighFrequency:
		return "high frequency"
	default:
		return "Regime(" + strconv.Itoa(int(r)) + ")"
	}
}

// Accuracy is the error Hertwig states for a formula.
type Accuracy struct {
	RelErr float64 // relative error, 0.05 for 5 %
	// Typical marks RelErr as a typical error rather than an upper bound.
	Typical bool
	Regime  Regime
}

var (
	boundFivePercent = Accuracy{RelErr: 0.05}
	lowFivePercent   = Accuracy{RelErr: 0.05, Regime: LowFrequency}
)

// String formats a as "error < 5%" or "error ≈ 1%", followed by the regime
// unless the formula holds at any frequency.
func (a Accuracy) String() string {
	rel := "<"
	if a.Typical {
		rel = "≈"
	}

	s := fmt.Sprintf("error %s %s%%", rel, strconv.FormatFloat(a.RelErr*100, 'g', -1, 64))
	if a.Regime != AnyFrequency {
		s += ", " + a.Regime.String()
	}

	return s
}
