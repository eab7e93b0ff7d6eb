package inductance

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-inductance/table"
)

// RoundConductor is a long straight round conductor.
type RoundConductor struct {
	Length   float64 // m
	Diameter float64 // m
	Wire     Wire
}

// Validate checks the dimensions and the wire.
func (c RoundConductor) Validate() error {
	if err := requirePositive([]string{"length", "diameter"}, c.Length, c.Diameter); err != nil {
		return err
	}

	return c.Wire.Validate()
}

// Inductance returns 2l(ln(4l/d) − 1 + μr·δ) nH with l in cm.
func (c RoundConductor) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	mu, err := c.Wire.internal(c.Diameter)
	if err != nil {
		return 0, err
	}

	l := c.Length * cmPerMetre
	L := 2 * l * (math.Log(4*c.Length/c.Diameter) - 1 + mu) * henryPerNH

	return L, finite(L)
}

// AtFrequency returns a copy operating at f Hz.
func (c RoundConductor) AtFrequency(f float64) FrequencyDependent {
	c.Wire.Frequency = f
	return c
}

// SkinFactor returns δ for the conductor.
func (c RoundConductor) SkinFactor() (float64, error) { return c.Wire.delta(c.Diameter) }

// Reference names the formula source.
func (RoundConductor) Reference() string {
	return bookRefBase + ". Selbstinduktivität eines gestreckten Rundleiters."
}

func (RoundConductor) Accuracy() Accuracy {
	return boundFivePercent
}

// ConductorAgainstEarth is a straight round conductor at height Height above
// a conducting ground plane, returning through the earth.
type ConductorAgainstEarth struct {
	Length   float64 // m
	Diameter float64 // m
	Height   float64 // m, axis above ground
	Wire     Wire
}

// Validate checks the dimensions and the wire. The conductor must not touch
// the ground plane.
func (c ConductorAgainstEarth) Validate() error {
	if err := requirePositive([]string{"length", "diameter", "height"}, c.Length, c.Diameter, c.Height); err != nil {
		return err
	}

	if c.Height <= c.Diameter/2 {
		return fmt.Errorf("%w: height %v m does not clear diameter %v m", ErrGeometry, c.Height, c.Diameter)
	}

	return c.Wire.Validate()
}

// Inductance returns the loop inductance of conductor and earth return.
func (c ConductorAgainstEarth) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	return earthLoop(c.Length, c.Diameter, c.Height, c.Wire)
}

// AtFrequency returns a copy operating at f Hz.
func (c ConductorAgainstEarth) AtFrequency(f float64) FrequencyDependent {
	c.Wire.Frequency = f
	return c
}

// SkinFactor returns δ for the conductor.
func (c ConductorAgainstEarth) SkinFactor() (float64, error) { return c.Wire.delta(c.Diameter) }

// Reference names the formula source.
func (ConductorAgainstEarth) Reference() string {
	return bookRefBase + ". Selbstinduktivität eines Leiters gegen Erde."
}

func (ConductorAgainstEarth) Accuracy() Accuracy {
	return boundFivePercent
}

// earthLoop evaluates the conductor-against-earth formula for SI inputs.
func earthLoop(length, diameter, height float64, w Wire) (float64, error) {
	mu, err := w.internal(diameter)
	if err != nil {
		return 0, err
	}

	l := length * cmPerMetre
	d := diameter * cmPerMetre
	h := height * cmPerMetre

	rd := math.Sqrt(l*l + d*d/4)
	rh := math.Sqrt(l*l + 4*h*h)

	L := (2*l*(math.Log((l+rd)/(l+rh))+math.Log(4*h/d)) +
		2*(rh-rd+mu*l-2*h+d/2)) * henryPerNH

	return L, finite(L)
}

// DoubleLine is a pair of parallel round conductors carrying opposite
// currents (forward and return line).
type DoubleLine struct {
	Length   float64 // m
	Diameter float64 // m
	Spacing  float64 // m, axis to axis
	Wire     Wire
}

// Validate checks the dimensions and the wire. The conductors must not
// overlap.
func (c DoubleLine) Validate() error {
	if err := requirePositive([]string{"length", "diameter", "spacing"}, c.Length, c.Diameter, c.Spacing); err != nil {
		return err
	}

	if c.Spacing < c.Diameter {
		return fmt.Errorf("%w: spacing %v m smaller than diameter %v m", ErrGeometry, c.Spacing, c.Diameter)
	}

	return c.Wire.Validate()
}

// Inductance returns 4l(ln(2a/d) − a/l + μr·δ) nH with l in cm.
func (c DoubleLine) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	mu, err := c.Wire.internal(c.Diameter)
	if err != nil {
		return 0, err
	}

	l := c.Length * cmPerMetre
	L := 4 * l * (math.Log(2*c.Spacing/c.Diameter) - c.Spacing/c.Length + mu) * henryPerNH

	return L, finite(L)
}

// AtFrequency returns a copy operating at f Hz.
func (c DoubleLine) AtFrequency(f float64) FrequencyDependent {
	c.Wire.Frequency = f
	return c
}

// SkinFactor returns δ for the conductors.
func (c DoubleLine) SkinFactor() (float64, error) { return c.Wire.delta(c.Diameter) }

// Reference names the formula source.
func (DoubleLine) Reference() string {
	return bookRefBase + ". Selbstinduktivität einer Doppelleitung."
}

func (DoubleLine) Accuracy() Accuracy {
	return boundFivePercent
}

// RectangularDoubleLine is a double line of conductors with rectangular
// cross-section Width × Thickness.
type RectangularDoubleLine struct {
	Length    float64 // m
	Spacing   float64 // m, centre to centre
	Width     float64 // m
	Thickness float64 // m
}

// Validate checks the dimensions.
func (c RectangularDoubleLine) Validate() error {
	return requirePositive([]string{"length", "spacing", "width", "thickness"},
		c.Length, c.Spacing, c.Width, c.Thickness)
}

// Inductance returns 4l(ln(a/(b+c)) + 1.5 − a/l + 0.2235(b+c)/l) nH.
func (c RectangularDoubleLine) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	l := c.Length * cmPerMetre
	a := c.Spacing * cmPerMetre
	bc := (c.Width + c.Thickness) * cmPerMetre

	L := 4 * l * (math.Log(a/bc) + 1.5 - a/l + 0.2235*bc/l) * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (RectangularDoubleLine) Reference() string {
	return bookRefBase + ". Induktivität einer Doppelleitung mit rechteckigem Leiterquerschnitt."
}

func (RectangularDoubleLine) Accuracy() Accuracy {
	return lowFivePercent
}

// Cage is a bundle of Count thin round conductors evenly spaced on a circle
// of radius Radius ("Reuse").
type Cage struct {
	Length   float64 // m
	Radius   float64 // m, of the circle through the conductor axes
	Diameter float64 // m, of each conductor
	Count    int
}

// Validate checks the dimensions. The geometric-mean radius of the bundle,
// (0.3894·d·n·ρ^(n−1))^(1/n), must be real and positive.
func (c Cage) Validate() error {
	if err := requirePositive([]string{"length", "radius", "diameter"}, c.Length, c.Radius, c.Diameter); err != nil {
		return err
	}

	if c.Count < 1 {
		return fmt.Errorf("%w: %d conductors", ErrInvalidCage, c.Count)
	}

	if c.Count > 1 {
		pitch := 2 * c.Radius * math.Sin(math.Pi/float64(c.Count))
		if c.Diameter > pitch {
			return fmt.Errorf("%w: conductors of %v m overlap at pitch %v m", ErrGeometry, c.Diameter, pitch)
		}
	}

	return nil
}

// Inductance returns 2l(ln(2l/r_eq) − 1) nH with r_eq the bundle's
// geometric-mean radius.
func (c Cage) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	l := c.Length * cmPerMetre
	d := c.Diameter * cmPerMetre
	rho := c.Radius * cmPerMetre
	n := float64(c.Count)

	// ln r_eq, evaluated in log space so large n cannot overflow ρ^(n−1).
	lnReq := (math.Log(0.3894*d*n) + (n-1)*math.Log(rho)) / n
	if math.IsNaN(lnReq) || math.IsInf(lnReq, 0) {
		return 0, fmt.Errorf("%w: ln r_eq = %v", ErrInvalidCage, lnReq)
	}

	L := 2 * l * (math.Log(2*l) - lnReq - 1) * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (Cage) Reference() string {
	return bookRefBase + ". Selbstinduktivität einer Reuse."
}

func (Cage) Accuracy() Accuracy {
	return lowFivePercent
}

// ParallelConductors is a bundle of Count parallel round conductors spaced
// Spacing apart at height Height above earth, sharing the current.
type ParallelConductors struct {
	Length   float64 // m
	Diameter float64 // m
	Spacing  float64 // m, between neighbouring axes
	Height   float64 // m, above ground
	Count    int     // 2..20
	Wire     Wire
}

// Validate checks the dimensions, the conductor count and the wire.
func (c ParallelConductors) Validate() error {
	err := requirePositive([]string{"length", "diameter", "spacing", "height"},
		c.Length, c.Diameter, c.Spacing, c.Height)
	if err != nil {
		return err
	}

	if first, last := table.KnTable.Range(); c.Count < first || c.Count > last {
		return fmt.Errorf("%w: %d not in %d..%d", ErrConductorCount, c.Count, first, last)
	}

	if c.Height <= c.Diameter/2 {
		return fmt.Errorf("%w: height %v m does not clear diameter %v m", ErrGeometry, c.Height, c.Diameter)
	}

	if c.Spacing < c.Diameter {
		return fmt.Errorf("%w: spacing %v m smaller than diameter %v m", ErrGeometry, c.Spacing, c.Diameter)
	}

	return c.Wire.Validate()
}

// Inductance returns (L1 + (n−1)·M)/n − l·k_n, where L1 is the single
// conductor against earth and M the mutual inductance of two neighbours.
// A correction ratio outside its table stops the calculation with
// ErrOutOfDomain.
func (c ParallelConductors) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	L1, err := earthLoop(c.Length, c.Diameter, c.Height, c.Wire)
	if err != nil {
		return 0, err
	}

	M, err := c.mutual()
	if err != nil {
		return 0, err
	}

	k, err := table.KnTable.At(c.Count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConductorCount, err)
	}

	n := float64(c.Count)
	l := c.Length * cmPerMetre

	L := (L1+(n-1)*M)/n - l*k*henryPerNH

	return L, finite(L)
}

// Mutual returns the mutual inductance M of two neighbouring conductors.
func (c ParallelConductors) Mutual() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	return c.mutual()
}

func (c ParallelConductors) mutual() (float64, error) {
	l := c.Length * cmPerMetre
	a := c.Spacing * cmPerMetre
	h := c.Height * cmPerMetre

	var arg float64

	if 2*h < l {
		ratio := 2 * h / l

		p, ok := table.P2hl.Interpolate(ratio)
		if !ok {
			return 0, fmt.Errorf("%w: %s at %v", ErrOutOfDomain, table.P2hl.Name(), ratio)
		}

		arg = 2*h/a - p + a/l
	} else {
		ratio := l / (2 * h)

		q, ok := table.Q2lh.Interpolate(ratio)
		if !ok {
			return 0, fmt.Errorf("%w: %s at %v", ErrOutOfDomain, table.Q2lh.Name(), ratio)
		}

		arg = 2*l/a - q + a/l
	}

	if arg <= 0 {
		return 0, fmt.Errorf("%w: mutual-inductance logarithm argument %v", ErrOutOfDomain, arg)
	}

	return 2 * l * math.Log(arg) * henryPerNH, nil
}

// AtFrequency returns a copy operating at f Hz.
func (c ParallelConductors) AtFrequency(f float64) FrequencyDependent {
	c.Wire.Frequency = f
	return c
}

// SkinFactor returns δ for each conductor.
func (c ParallelConductors) SkinFactor() (float64, error) { return c.Wire.delta(c.Diameter) }

// Reference names the formula source.
func (ParallelConductors) Reference() string {
	return bookRefBase + ". Induktivität mehrerer paralleler Leiter gegen Erde."
}

func (ParallelConductors) Accuracy() Accuracy {
	return Accuracy{RelErr: 0.01, Typical: true}
}
