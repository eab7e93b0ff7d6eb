package inductance

import (
	"fmt"

	"github.com/cwbudde/algo-inductance/table"
)

// SingleLayerCoil is a single-layer cylindrical coil of round wire.
type SingleLayerCoil struct {
	Diameter float64 // m, mean winding diameter
	Length   float64 // m, winding length
	Turns    float64
}

// Validate checks the dimensions.
func (c SingleLayerCoil) Validate() error {
	return requirePositive([]string{"diameter", "length", "turns"}, c.Diameter, c.Length, c.Turns)
}

// Inductance returns K(D/l)·w²·D nH with D in cm. Coils whose D/l lies
// outside the K table fail with ErrOutOfDomain.
func (c SingleLayerCoil) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	ratio := c.Diameter / c.Length

	k, ok := table.KDl.Interpolate(ratio)
	if !ok {
		lo, hi := table.KDl.Domain()
		return 0, fmt.Errorf("%w: D/l = %v not in [%v, %v]", ErrOutOfDomain, ratio, lo, hi)
	}

	D := c.Diameter * cmPerMetre
	L := k * c.Turns * c.Turns * D * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (SingleLayerCoil) Reference() string {
	return bookRefBase + ". Induktivität einlagiger Zylinderspulen aus Runddraht."
}

func (SingleLayerCoil) Accuracy() Accuracy {
	return lowFivePercent
}
