package inductance

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// RectangularLoop is a rectangular wire loop of side lengths Side1 × Side2
// made from conductor of rectangular cross-section Width × Thickness.
type RectangularLoop struct {
	Side1     float64 // m
	Side2     float64 // m
	Width     float64 // m
	Thickness float64 // m
}

// Validate checks the dimensions.
func (c RectangularLoop) Validate() error {
	return requirePositive([]string{"side1", "side2", "width", "thickness"},
		c.Side1, c.Side2, c.Width, c.Thickness)
}

// Inductance returns the loop inductance in henry.
func (c RectangularLoop) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	s1 := c.Side1 * cmPerMetre
	s2 := c.Side2 * cmPerMetre
	bc := (c.Width + c.Thickness) * cmPerMetre
	g := math.Hypot(s1, s2)

	logs := (s1+s2)*math.Log(2*s1*s2/bc) - s1*math.Log(s1+g) - s2*math.Log(s2+g)
	rest := 2*g - (s1+s2)/2 + 0.447*bc

	L := 4 * (logs + rest) * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (RectangularLoop) Reference() string {
	return bookRefBase + ". Induktivität einer rechteckigen Drahtschleife mit rechteckigem Leiterquerschnitt."
}

func (RectangularLoop) Accuracy() Accuracy {
	return lowFivePercent
}

// SquareLoop is a square loop of round wire.
type SquareLoop struct {
	Side     float64 // m
	Diameter float64 // m
	Wire     Wire
}

// Validate checks the dimensions and the wire.
func (c SquareLoop) Validate() error {
	if err := requirePositive([]string{"side", "diameter"}, c.Side, c.Diameter); err != nil {
		return err
	}

	if c.Diameter >= c.Side {
		return fmt.Errorf("%w: wire diameter %v m not smaller than side %v m", ErrGeometry, c.Diameter, c.Side)
	}

	return c.Wire.Validate()
}

// Inductance returns 8s(ln(2s/d) + d/(2s) − 0.774 + μr·δ) nH with s in cm.
func (c SquareLoop) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	mu, err := c.Wire.internal(c.Diameter)
	if err != nil {
		return 0, err
	}

	s := c.Side * cmPerMetre
	d := c.Diameter * cmPerMetre

	L := 8 * s * (math.Log(2*s/d) + d/(2*s) - 0.774 + mu) * henryPerNH

	return L, finite(L)
}

// AtFrequency returns a copy operating at f Hz.
func (c SquareLoop) AtFrequency(f float64) FrequencyDependent {
	c.Wire.Frequency = f
	return c
}

// SkinFactor returns δ for the wire.
func (c SquareLoop) SkinFactor() (float64, error) { return c.Wire.delta(c.Diameter) }

// Reference names the formula source.
func (SquareLoop) Reference() string {
	return bookRefBase + ". Induktivität einer quadratischen Drahtschleife aus Runddraht."
}

func (SquareLoop) Accuracy() Accuracy {
	return boundFivePercent
}

// Form is the outline of a single wire loop of regular shape.
type Form int

const (
	Circle Form = iota
	Octagon
	Hexagon
	Pentagon
	Square
	RightIsoscelesTriangle
	IsoscelesTriangle

	numForms
)

// ErrUnknownForm is returned by ParseForm.
var ErrUnknownForm = errors.New("inductance: unknown loop form")

var forms = [numForms]struct {
	name   string
	factor float64
}{
	Circle:                 {"circle", 2.451},
	Octagon:                {"octagon", 2.561},
	Hexagon:                {"hexagon", 2.636},
	Pentagon:               {"pentagon", 2.712},
	Square:                 {"square", 2.853},
	RightIsoscelesTriangle: {"right-triangle", 3.332},
	IsoscelesTriangle:      {"triangle", 3.197},
}

// Factor returns the form constant Φ of the loop formula.
func (f Form) Factor() float64 {
	if f < 0 || f >= numForms {
		return math.NaN()
	}

	return forms[f].factor
}

// String returns the form name accepted by ParseForm.
func (f Form) String() string {
	if f < 0 || f >= numForms {
		return fmt.Sprintf("Form(%d)", int(f))
	}

	return forms[f].name
}

// Forms lists all loop forms.
func Forms() []Form {
	out := make([]Form, numForms)
	for i := range out {
		out[i] = Form(i)
	}

	return out
}

// ParseForm resolves a form name, ignoring case.
func ParseForm(name string) (Form, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, f := range forms {
		if f.name == key {
			return Form(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

// RegularLoop is a single loop of round wire with a regular outline of the
// given perimeter.
type RegularLoop struct {
	Perimeter float64 // m
	Diameter  float64 // m
	Form      Form
}

// Validate checks the dimensions and the form.
func (c RegularLoop) Validate() error {
	if err := requirePositive([]string{"perimeter", "diameter"}, c.Perimeter, c.Diameter); err != nil {
		return err
	}

	if c.Form < 0 || c.Form >= numForms {
		return fmt.Errorf("%w: %v", ErrUnknownForm, c.Form)
	}

	return nil
}

// Inductance returns 2l(ln(4l/d) − Φ) nH with l the perimeter in cm.
func (c RegularLoop) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	l := c.Perimeter * cmPerMetre
	L := 2 * l * (math.Log(4*c.Perimeter/c.Diameter) - c.Form.Factor()) * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (RegularLoop) Reference() string {
	return bookRefBase + ". Induktivität einer Drahtschleife regelmäßiger Form."
}

func (RegularLoop) Accuracy() Accuracy {
	return Accuracy{RelErr: 0.005, Typical: true, Regime: HighFrequency}
}

// FlatBandRing is a circular ring bent from flat strip of width Width.
type FlatBandRing struct {
	Diameter float64 // m, of the ring
	Width    float64 // m, of the strip
}

// Validate checks the dimensions.
func (c FlatBandRing) Validate() error {
	return requirePositive([]string{"diameter", "width"}, c.Diameter, c.Width)
}

// Inductance returns 2πD(ln(4D/b) − 0.5) nH with D in cm.
func (c FlatBandRing) Inductance() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	D := c.Diameter * cmPerMetre
	L := 2 * math.Pi * D * (math.Log(4*c.Diameter/c.Width) - 0.5) * henryPerNH

	return L, finite(L)
}

// Reference names the formula source.
func (FlatBandRing) Reference() string {
	return bookRefBase + ". Induktivität eines Ringes aus Flachband."
}

func (FlatBandRing) Accuracy() Accuracy {
	return lowFivePercent
}

// TubularRing is a circular ring of tube with inner diameter Inner and outer
// diameter Outer. A solid conductor has Inner == 0.
type TubularRing struct {
	Diameter float64 // m, of the ring
	Inner    float64 // m
	Outer    float64 // m
}

// Validate checks the dimensions.
func (c TubularRing) Validate() error {
	if err := requirePositive([]string{"diameter", "outer"}, c.Diameter, c.Outer); err != nil {
		return err
	}

	if math.IsNaN(c.Inner) || c.Inner < 0 {
		return fmt.Errorf("%w: inner = %v", ErrInvalidDimension, c.Inner)
	}

	if c.Inner >= c.Outer {
		return fmt.Errorf("%w: inner diameter %v m not smaller than outer %v m", ErrGeometry, c.Inner, c.Outer)
	}

	return nil
}

// Bounds returns the inductance for uniform current distribution (low
// frequency) and for current confined to the outer surface (high frequency).
func (c TubularRing) Bounds() (low, high float64, err error) {
	if err = c.Validate(); err != nil {
		return 0, 0, err
	}

	D := c.Diameter * cmPerMetre
	d1 := c.Inner * cmPerMetre
	d2 := c.Outer * cmPerMetre

	outer := math.Log(8 * D / d2)

	var tube float64
	if d1 > 0 {
		span := d2*d2 - d1*d1
		tube = -d1*d1/(2*span) + math.Pow(d1, 4)*math.Log(d2/d1)/(span*span)
	}

	low = 2 * math.Pi * D * (outer - 1.75 + tube) * henryPerNH
	high = 2 * math.Pi * D * (outer - 2) * henryPerNH

	if err = finite(low); err != nil {
		return 0, 0, err
	}

	return low, high, finite(high)
}

// Inductance returns the low-frequency value of Bounds.
func (c TubularRing) Inductance() (float64, error) {
	low, _, err := c.Bounds()
	return low, err
}

// Reference names the formula source.
func (TubularRing) Reference() string {
	return bookRefBase + ". Induktivität eines Kreisringes mit rohrförmigem Querschnitt."
}

// Accuracy applies to the low-frequency value L0.
func (TubularRing) Accuracy() Accuracy {
	return lowFivePercent
}
